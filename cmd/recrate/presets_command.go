package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recrate/internal/preset"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available MP3 encoding presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, 3)
			for _, p := range preset.All() {
				rows = append(rows, []string{p.Name, p.QualityFlag + " " + p.QualityValue, p.Label()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Quality", "Description"}, rows))
			return nil
		},
	}
}
