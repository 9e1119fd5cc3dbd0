package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/purusov/xltools-go/internal/ui"
	"github.com/purusov/xltools-go/pkg/xltools"
)

func TestFlagFallbackHonorsZeroConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var threshold int
	var highlight string
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 90, "")
	cmd.Flags().StringVarP(&highlight, "color-highlight", "c", "", "")

	// An unchanged flag defers to the config value, zero included.
	assert.Equal(t, 0, intFlag(cmd, "threshold", threshold, 0))
	assert.Equal(t, 75, intFlag(cmd, "threshold", threshold, 75))
	assert.Equal(t, "", stringFlag(cmd, "color-highlight", highlight, ""))
	assert.Equal(t, "FCE883", stringFlag(cmd, "color-highlight", highlight, "FCE883"))

	// A set flag wins over any config value.
	require.NoError(t, cmd.Flags().Set("threshold", "95"))
	require.NoError(t, cmd.Flags().Set("color-highlight", "FFFF00"))
	assert.Equal(t, 95, intFlag(cmd, "threshold", threshold, 0))
	assert.Equal(t, "FFFF00", stringFlag(cmd, "color-highlight", highlight, "AABBCC"))
}

func TestRunMergeStatusLines(t *testing.T) {
	dir := t.TempDir()
	destPath := filepath.Join(dir, "dest.xlsx")
	sourcePath := filepath.Join(dir, "source.xlsx")

	for path, cells := range map[string]map[string]string{
		sourcePath: {"W2": "Acme", "AE2": "100"},
		destPath:   {"B2": "Acme"},
	} {
		f := excelize.NewFile()
		for cell, value := range cells {
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())
	}

	var buf bytes.Buffer
	old := ui.Out
	ui.Out = &buf
	defer func() { ui.Out = old }()

	opts := xltools.DefaultOptions()
	opts.Output = filepath.Join(dir, "out.xlsx")
	opts.Backup = false

	require.NoError(t, runMerge(destPath, sourcePath, opts))

	out := buf.String()
	for _, want := range []string{
		"Source document: all rows read successfully",
		"Destination document: all rows updated successfully",
		"Saved file:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("runMerge output missing %q in %q", want, out)
		}
	}
}
