package preset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Select presents the three fixed presets and reads a single choice from
// scan. Invalid input re-displays the prompt indefinitely. The returned error
// is non-nil only when the input stream ends, in which case the caller keeps
// its current preset.
func Select(scan *bufio.Scanner, out io.Writer) (Preset, error) {
	options := All()
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "--- MP3 Encoding Settings ---")
		for i, p := range options {
			fmt.Fprintf(out, "%d. %s\n", i+1, p.Label())
		}
		fmt.Fprintf(out, "Enter your choice (1-%d): ", len(options))

		if !scan.Scan() {
			if err := scan.Err(); err != nil {
				return Preset{}, err
			}
			return Preset{}, io.EOF
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scan.Text()))
		if err == nil && choice >= 1 && choice <= len(options) {
			return options[choice-1], nil
		}
		fmt.Fprintf(out, "Invalid choice. Please enter a number between 1 and %d.\n", len(options))
	}
}
