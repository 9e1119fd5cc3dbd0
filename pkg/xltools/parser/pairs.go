package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/purusov/xltools-go/pkg/xltools/models"
)

// PairOptions configures source table extraction.
type PairOptions struct {
	// MatchColumn is the column whose content becomes the lookup key.
	MatchColumn string
	// ValueColumn is the column whose content becomes the stored value.
	ValueColumn string
	// MinRow and MaxRow bound the scan, 1-based and inclusive. MaxRow must
	// already be resolved (see ResolveMaxRow).
	MinRow int
	MaxRow int
	// Normalize lower-cases keys in addition to the always-applied trim.
	Normalize bool
	// Progress, if set, is called once per scanned row.
	Progress func(row int)
}

// ExtractPairs reads the match/value column pairs of a sheet and builds the
// source table. Keys that are empty after normalization are dropped: an
// empty key can never be the target of a meaningful match.
func ExtractPairs(f *excelize.File, sheetName string, opts PairOptions) (*models.SourceTable, error) {
	matchIdx, err := ColumnIndex(opts.MatchColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := ColumnIndex(opts.ValueColumn)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	table := models.NewSourceTable()
	for rowNum := opts.MinRow; rowNum <= opts.MaxRow && rowNum <= len(rows); rowNum++ {
		if opts.Progress != nil {
			opts.Progress(rowNum)
		}
		row := rows[rowNum-1]
		key := NormalizeKey(cellAt(row, matchIdx), opts.Normalize)
		if key == "" {
			continue
		}
		table.Put(key, cellAt(row, valueIdx))
	}

	return table, nil
}

// ResolveMaxRow translates the -1 sentinel into the sheet's actual last row
// and clamps requests beyond it.
func ResolveMaxRow(f *excelize.File, sheetName string, requested int) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}
	if requested < 0 || requested > len(rows) {
		return len(rows), nil
	}
	return requested, nil
}

// ColumnIndex converts a column letter ("A", "AE") to a 0-based index.
func ColumnIndex(column string) (int, error) {
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// NormalizeKey trims surrounding whitespace and, when normalize is set,
// lower-cases the key.
func NormalizeKey(s string, normalize bool) string {
	s = strings.TrimSpace(s)
	if normalize {
		s = strings.ToLower(s)
	}
	return s
}

// cellAt returns the cell at idx, tolerating the ragged rows GetRows
// produces for trailing empty cells.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
