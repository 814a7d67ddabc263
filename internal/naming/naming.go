// Package naming derives output directory names for converted albums.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// formatMarker is the literal token replaced with the preset name. Matching
// is case-insensitive, so "FLAC", "flac", and "Flac" all qualify.
const formatMarker = "flac"

// bitDepthPattern removes the literal bit-depth marker "16" wherever it
// appears, along with whitespace immediately before it so "[FLAC 16]" derives
// to "[MP3-v2]" rather than "[MP3-v2 ]". It is a literal substring match: an
// album title that legitimately contains "16" loses it too, and a preset name
// containing "16" gets mangled.
var bitDepthPattern = regexp.MustCompile(`[ \t]*16`)

// DeriveAlbumDir computes the output subdirectory name for an archive: base
// name with the extension stripped, the format marker replaced by the preset
// name, the bit-depth marker removed, and surrounding whitespace trimmed.
// This is a best-effort textual rename, not a structured parse.
func DeriveAlbumDir(archivePath, presetName string) string {
	base := filepath.Base(archivePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	renamed := replaceFold(base, formatMarker, presetName)
	renamed = bitDepthPattern.ReplaceAllString(renamed, "")
	return strings.TrimSpace(renamed)
}

// replaceFold replaces every case-insensitive occurrence of marker in s with
// repl. Marker matching is byte-wise ASCII folding, which is sufficient for
// the literal markers used here.
func replaceFold(s, marker, repl string) string {
	if marker == "" {
		return s
	}
	lower := strings.ToLower(s)
	marker = strings.ToLower(marker)

	var b strings.Builder
	for {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		b.WriteString(repl)
		s = s[idx+len(marker):]
		lower = lower[idx+len(marker):]
	}
}
