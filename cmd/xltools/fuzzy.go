package main

import (
	"github.com/spf13/cobra"

	"github.com/purusov/xltools-go/internal/ui"
)

func newFuzzyCmd() *cobra.Command {
	mf := &mergeFlags{}
	var (
		threshold int
		weighted  bool
	)

	cmd := &cobra.Command{
		Use:   "fuzzy DEST SOURCE",
		Short: "Merge two Excel documents using fuzzy string matching",
		Long: `fuzzy populates a column of the destination document with values from the
source document. Rows without an identical match fall back to fuzzy string
scoring; the best candidate at or above the threshold wins. Updated cells
are color coded: green for literal matches, yellow for scores of 99 and
above, red for lower accepted scores.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mf.options(cmd, args[0])
			opts.Fuzzy = true
			opts.Threshold = intFlag(cmd, "threshold", threshold, cfg.Defaults.Threshold)
			opts.Weighted = weighted

			ui.Infof("Minimum score that will be considered a match: %d.", opts.Threshold)
			if opts.Weighted {
				ui.Infof("Using weighted ratio to calculate scores.")
			} else {
				ui.Infof("Using simple ratio to calculate scores.")
			}

			return runMerge(args[0], args[1], opts)
		},
	}

	mf.register(cmd)
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 90, "Minimum score that will be considered a match")
	cmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "Use weighted ratio instead of simple ratio for scores")

	return cmd
}
