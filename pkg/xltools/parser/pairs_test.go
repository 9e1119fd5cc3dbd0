package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func newTestFile(t *testing.T, cells map[string]string) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractPairs(t *testing.T) {
	f := newTestFile(t, map[string]string{
		"A1": "header", "B1": "value header",
		"A2": " Acme Corp ", "B2": "100",
		"A3": "Globex", "B3": "200",
		"B4": "orphan value",
		"A5": "Globex", "B5": "300",
	})

	var seen []int
	table, err := ExtractPairs(f, "Sheet1", PairOptions{
		MatchColumn: "A",
		ValueColumn: "B",
		MinRow:      2,
		MaxRow:      5,
		Progress:    func(row int) { seen = append(seen, row) },
	})
	if err != nil {
		t.Fatalf("ExtractPairs failed: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Expected 2 keys, got %d", table.Len())
	}

	// Keys are trimmed; values are verbatim.
	if v, ok := table.Get("Acme Corp"); !ok || v != "100" {
		t.Errorf("Expected Acme Corp -> 100, got %q (found: %v)", v, ok)
	}

	// Duplicate key: last row wins, first position kept.
	if v, _ := table.Get("Globex"); v != "300" {
		t.Errorf("Expected duplicate key to take last value, got %q", v)
	}
	keys := table.Keys()
	if len(keys) != 2 || keys[0] != "Acme Corp" || keys[1] != "Globex" {
		t.Errorf("Unexpected key order: %v", keys)
	}

	// Row 4 has an empty key and is dropped; progress still visits it.
	if len(seen) != 4 {
		t.Errorf("Expected progress for 4 rows, got %v", seen)
	}
}

func TestExtractPairsNormalize(t *testing.T) {
	f := newTestFile(t, map[string]string{
		"A2": "  ACME Corp  ", "B2": "100",
	})

	table, err := ExtractPairs(f, "Sheet1", PairOptions{
		MatchColumn: "A",
		ValueColumn: "B",
		MinRow:      2,
		MaxRow:      2,
		Normalize:   true,
	})
	if err != nil {
		t.Fatalf("ExtractPairs failed: %v", err)
	}

	if _, ok := table.Get("acme corp"); !ok {
		t.Errorf("Expected lower-cased key, keys: %v", table.Keys())
	}
}

func TestExtractPairsEmptyRange(t *testing.T) {
	f := newTestFile(t, map[string]string{
		"A2": "Acme", "B2": "100",
	})

	// Min row past the max row scans nothing and is not an error.
	table, err := ExtractPairs(f, "Sheet1", PairOptions{
		MatchColumn: "A",
		ValueColumn: "B",
		MinRow:      5,
		MaxRow:      2,
	})
	if err != nil {
		t.Fatalf("ExtractPairs failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Expected empty table, got keys %v", table.Keys())
	}
}

func TestResolveMaxRow(t *testing.T) {
	f := newTestFile(t, map[string]string{
		"A1": "x", "A2": "y", "A3": "z",
	})

	tests := []struct {
		requested int
		expected  int
	}{
		{-1, 3},
		{2, 2},
		{100, 3},
	}

	for _, tt := range tests {
		got, err := ResolveMaxRow(f, "Sheet1", tt.requested)
		if err != nil {
			t.Fatalf("ResolveMaxRow(%d) failed: %v", tt.requested, err)
		}
		if got != tt.expected {
			t.Errorf("ResolveMaxRow(%d) = %d, expected %d", tt.requested, got, tt.expected)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input     string
		normalize bool
		expected  string
	}{
		{"  Acme  ", false, "Acme"},
		{"  Acme  ", true, "acme"},
		{"ACME", true, "acme"},
		{"", false, ""},
		{"   ", true, ""},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.input, tt.normalize); got != tt.expected {
			t.Errorf("NormalizeKey(%q, %v) = %q, expected %q", tt.input, tt.normalize, got, tt.expected)
		}
	}
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		column   string
		expected int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AE", 30},
	}

	for _, tt := range tests {
		got, err := ColumnIndex(tt.column)
		if err != nil {
			t.Fatalf("ColumnIndex(%q) failed: %v", tt.column, err)
		}
		if got != tt.expected {
			t.Errorf("ColumnIndex(%q) = %d, expected %d", tt.column, got, tt.expected)
		}
	}

	if _, err := ColumnIndex("1A"); err == nil {
		t.Error("Expected error for invalid column name")
	}
}
