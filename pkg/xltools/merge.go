package xltools

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/purusov/xltools-go/pkg/xltools/matcher"
	"github.com/purusov/xltools-go/pkg/xltools/models"
	"github.com/purusov/xltools-go/pkg/xltools/parser"
)

// Fill colors for fuzzy mode, matching the original tool: green for literal
// hits, yellow for near-certain scores (99 and up), red for anything else
// that still cleared the threshold.
const (
	colorLiteralMatch   = "90EE90"
	colorFuzzyHighScore = "FCE883"
	colorFuzzyLowScore  = "FF91A4"
)

// Merge matches the destination document against the source document and
// populates the destination value column. The merged document is saved to
// opts.Output, or over the destination path when no output is set; in-place
// saves copy the original aside first unless backups are disabled.
func Merge(destPath, sourcePath string, opts Options) (*models.Report, error) {
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = destPath
	}
	if output == destPath && opts.Backup {
		backup, err := BackupFile(destPath)
		if err != nil {
			return nil, err
		}
		slog.Debug("destination backed up", "path", backup)
	}

	source, err := OpenWorkbook(sourcePath)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	dest, err := OpenWorkbook(destPath)
	if err != nil {
		return nil, err
	}
	defer dest.Close()

	sourceSheet := activeSheet(source)
	destSheet := activeSheet(dest)

	sourceMax, err := parser.ResolveMaxRow(source, sourceSheet, opts.SourceMaxRow)
	if err != nil {
		return nil, newMergeError("read", sourcePath, err)
	}
	destMax, err := parser.ResolveMaxRow(dest, destSheet, opts.DestMaxRow)
	if err != nil {
		return nil, newMergeError("read", destPath, err)
	}
	slog.Debug("row ranges resolved",
		"source_min", opts.SourceMinRow, "source_max", sourceMax,
		"dest_min", opts.DestMinRow, "dest_max", destMax)

	table, err := parser.ExtractPairs(source, sourceSheet, parser.PairOptions{
		MatchColumn: opts.SourceMatchColumn,
		ValueColumn: opts.SourceValueColumn,
		MinRow:      opts.SourceMinRow,
		MaxRow:      sourceMax,
		Normalize:   !opts.Fuzzy && opts.IgnoreCase,
		Progress:    opts.SourceProgress,
	})
	if err != nil {
		return nil, newMergeError("read", sourcePath, err)
	}
	slog.Debug("source table built", "keys", table.Len())

	rep := &models.Report{
		SourceRows: rowSpan(opts.SourceMinRow, sourceMax),
		DestRows:   rowSpan(opts.DestMinRow, destMax),
	}

	m := &merger{
		dest:   dest,
		sheet:  destSheet,
		opts:   opts,
		table:  table,
		styles: newStyler(dest),
		report: rep,
	}
	if opts.Fuzzy {
		err = m.updateFuzzy(opts.DestMinRow, destMax)
	} else {
		err = m.updateExact(opts.DestMinRow, destMax)
	}
	if err != nil {
		return nil, newMergeError("update", destPath, err)
	}

	if err := SaveWorkbook(dest, output); err != nil {
		return nil, err
	}

	rep.Elapsed = time.Since(start)
	return rep, nil
}

type merger struct {
	dest   *excelize.File
	sheet  string
	opts   Options
	table  *models.SourceTable
	styles *styler
	report *models.Report
}

// updateExact populates rows whose key is present in the table verbatim.
func (m *merger) updateExact(minRow, maxRow int) error {
	for row := minRow; row <= maxRow; row++ {
		if m.opts.DestProgress != nil {
			m.opts.DestProgress(row)
		}
		key, err := m.key(row)
		if err != nil {
			return err
		}
		if key == "" {
			m.report.Skipped++
			continue
		}
		value, ok := m.table.Get(key)
		if !ok {
			m.report.Skipped++
			continue
		}
		if err := m.apply(row, key, key, 100, models.MatchExact, value, m.opts.Highlight); err != nil {
			return err
		}
	}
	return nil
}

// updateFuzzy tries a literal match per row, queues misses for concurrent
// scoring, then applies the accepted matches. Cell reads and writes stay on
// this goroutine; only the scoring fans out.
func (m *merger) updateFuzzy(minRow, maxRow int) error {
	var pending []matcher.RowKey
	for row := minRow; row <= maxRow; row++ {
		if m.opts.DestProgress != nil {
			m.opts.DestProgress(row)
		}
		key, err := m.key(row)
		if err != nil {
			return err
		}
		if key == "" {
			m.report.Skipped++
			continue
		}
		if value, ok := m.table.Get(key); ok {
			if err := m.apply(row, key, key, 100, models.MatchExact, value, colorLiteralMatch); err != nil {
				return err
			}
			continue
		}
		pending = append(pending, matcher.RowKey{Row: row, Key: key})
	}

	scorer := matcher.Scorer{Weighted: m.opts.Weighted}
	matches := scorer.BestMatches(pending, m.table, m.opts.EffectiveWorkers())

	for _, match := range matches {
		if match.Score < m.opts.Threshold {
			m.report.Skipped++
			continue
		}
		value, ok := m.table.Get(match.Match)
		if !ok {
			m.report.Skipped++
			continue
		}
		color := colorFuzzyLowScore
		if match.Score >= 99 {
			color = colorFuzzyHighScore
		}
		if err := m.apply(match.Row, match.Key, match.Match, match.Score, models.MatchFuzzy, value, color); err != nil {
			return err
		}
	}
	return nil
}

// key reads and normalizes the match-column content of a destination row.
func (m *merger) key(row int) (string, error) {
	cell := m.opts.DestMatchColumn + strconv.Itoa(row)
	raw, err := m.dest.GetCellValue(m.sheet, cell)
	if err != nil {
		return "", err
	}
	return parser.NormalizeKey(raw, !m.opts.Fuzzy && m.opts.IgnoreCase), nil
}

// apply writes value into the destination value cell unless it already
// holds it, filling the cell with color when one is given.
func (m *merger) apply(row int, key, matchedKey string, score int, kind models.MatchKind, value, color string) error {
	cell := m.opts.DestValueColumn + strconv.Itoa(row)
	current, err := m.dest.GetCellValue(m.sheet, cell)
	if err != nil {
		return err
	}
	if current == value {
		m.report.Unchanged++
		return nil
	}
	if err := m.dest.SetCellValue(m.sheet, cell, value); err != nil {
		return err
	}
	if color != "" {
		styleID, err := m.styles.fill(color)
		if err != nil {
			return err
		}
		if err := m.dest.SetCellStyle(m.sheet, cell, cell, styleID); err != nil {
			return err
		}
	}
	m.report.Updates = append(m.report.Updates, models.Update{
		Row:        row,
		Cell:       cell,
		Key:        key,
		MatchedKey: matchedKey,
		Score:      score,
		Kind:       kind,
	})
	return nil
}

func activeSheet(f *excelize.File) string {
	return f.GetSheetName(f.GetActiveSheetIndex())
}

func rowSpan(min, max int) int {
	if max < min {
		return 0
	}
	return max - min + 1
}
