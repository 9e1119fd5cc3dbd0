package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/purusov/xltools-go/internal/ui"
)

func newMatchCmd() *cobra.Command {
	mf := &mergeFlags{}
	var (
		ignoreCase bool
		highlight  string
	)

	cmd := &cobra.Command{
		Use:   "match DEST SOURCE",
		Short: "Merge two Excel documents by exact content match",
		Long: `match populates a column of the destination document with values from the
source document wherever the match columns hold identical content.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mf.options(cmd, args[0])
			opts.IgnoreCase = ignoreCase
			opts.Highlight = strings.ToUpper(stringFlag(cmd, "color-highlight", highlight, cfg.Defaults.Highlight))

			if opts.ShouldHighlight() {
				ui.Infof("Changed cells will be highlighted, color: %s.", opts.Highlight)
			} else {
				ui.Infof("Changed cells will NOT be highlighted.")
			}
			if opts.IgnoreCase {
				ui.Infof("Case-insensitive match requested.")
			} else {
				ui.Infof("Case-sensitive match requested.")
			}

			return runMerge(args[0], args[1], opts)
		},
	}

	mf.register(cmd)
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Ignore case and surrounding spaces when matching")
	cmd.Flags().StringVarP(&highlight, "color-highlight", "c", "", "Set the background color of changed cells (RRGGBB)")
	// Bare -c selects yellow, mirroring the original default.
	cmd.Flags().Lookup("color-highlight").NoOptDefVal = "FFFF00"

	return cmd
}
