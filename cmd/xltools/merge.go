package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/purusov/xltools-go/internal/ui"
	"github.com/purusov/xltools-go/pkg/xltools"
)

// mergeFlags is the flag surface shared by the match and fuzzy subcommands.
// Unset flags fall back to the loaded config defaults.
type mergeFlags struct {
	output       string
	newFile      bool
	destMatch    string
	sourceMatch  string
	destColumn   string
	sourceColumn string
	destMinRow   int
	sourceMinRow int
	destMaxRow   int
	sourceMaxRow int
	noBackup     bool
	workers      int
}

func (mf *mergeFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&mf.output, "output", "o", "", "Output document path (default: save in place)")
	f.BoolVar(&mf.newFile, "new", false, "Write to <dest>_new.xlsx instead of saving in place")
	f.StringVar(&mf.destMatch, "dest-match", "B", "Column in the destination document used to match the content")
	f.StringVar(&mf.sourceMatch, "source-match", "W", "Column in the source document used to match the content")
	f.StringVar(&mf.destColumn, "dest-column", "G", "Column in the destination document which will be populated")
	f.StringVar(&mf.sourceColumn, "source-column", "AE", "Column in the source document used as the source of data")
	f.IntVar(&mf.destMinRow, "dest-min-row", 2, "Min row in the destination document")
	f.IntVar(&mf.sourceMinRow, "source-min-row", 2, "Min row in the source document")
	f.IntVar(&mf.destMaxRow, "dest-max-row", -1, "Max row in the destination document (-1: actual max row)")
	f.IntVar(&mf.sourceMaxRow, "source-max-row", -1, "Max row in the source document (-1: actual max row)")
	f.BoolVarP(&mf.noBackup, "no-backup", "n", false, "Do not back up the destination document")
	f.IntVar(&mf.workers, "workers", 0, "Concurrent scoring workers (0: all CPUs)")
}

// options resolves flags against config defaults: an explicitly set flag
// wins, otherwise the config value applies.
func (mf *mergeFlags) options(cmd *cobra.Command, destPath string) xltools.Options {
	d := cfg.Defaults
	opts := xltools.DefaultOptions()

	opts.DestMatchColumn = strings.ToUpper(stringFlag(cmd, "dest-match", mf.destMatch, d.DestMatchColumn))
	opts.SourceMatchColumn = strings.ToUpper(stringFlag(cmd, "source-match", mf.sourceMatch, d.SourceMatchColumn))
	opts.DestValueColumn = strings.ToUpper(stringFlag(cmd, "dest-column", mf.destColumn, d.DestValueColumn))
	opts.SourceValueColumn = strings.ToUpper(stringFlag(cmd, "source-column", mf.sourceColumn, d.SourceValueColumn))
	opts.DestMinRow = intFlag(cmd, "dest-min-row", mf.destMinRow, d.DestMinRow)
	opts.SourceMinRow = intFlag(cmd, "source-min-row", mf.sourceMinRow, d.SourceMinRow)
	opts.DestMaxRow = mf.destMaxRow
	opts.SourceMaxRow = mf.sourceMaxRow
	opts.Workers = intFlag(cmd, "workers", mf.workers, d.Workers)
	opts.Backup = !mf.noBackup

	if mf.output != "" {
		opts.Output = mf.output
	} else if mf.newFile {
		opts.Output = xltools.DerivedName(destPath, "new")
	}
	return opts
}

// Config values are fully resolved by config.Load, so an unchanged flag
// always defers to them, zero included (a persisted threshold of 0 is valid).
func stringFlag(cmd *cobra.Command, name, flagValue, cfgValue string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return cfgValue
}

func intFlag(cmd *cobra.Command, name string, flagValue, cfgValue int) int {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return cfgValue
}

func runMerge(destPath, sourcePath string, opts xltools.Options) error {
	opts.SourceProgress = func(row int) {
		ui.Progressf("Source document: reading row %d", row)
	}
	opts.DestProgress = func(row int) {
		ui.Progressf("Destination document: updating row %d", row)
	}

	rep, err := xltools.Merge(destPath, sourcePath, opts)
	ui.EndProgress()
	if err != nil {
		ui.Errorf("%v", err)
		return err
	}

	output := opts.Output
	if output == "" {
		output = destPath
	}
	ui.Infof("Source document: all rows read successfully")
	ui.Infof("Destination document: all rows updated successfully")
	ui.Infof("Saved file: %s", output)
	ui.Summary(rep)
	return nil
}
