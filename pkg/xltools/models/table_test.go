package models

import "testing"

func TestSourceTable(t *testing.T) {
	table := NewSourceTable()
	table.Put("a", "1")
	table.Put("b", "2")
	table.Put("a", "3")

	if table.Len() != 2 {
		t.Errorf("Expected 2 keys, got %d", table.Len())
	}

	if v, ok := table.Get("a"); !ok || v != "3" {
		t.Errorf("Expected overwritten value 3, got %q (found: %v)", v, ok)
	}

	keys := table.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Expected insertion order [a b], got %v", keys)
	}

	if _, ok := table.Get("missing"); ok {
		t.Error("Expected missing key to report not found")
	}
}

func TestReportCounts(t *testing.T) {
	rep := &Report{
		Updates: []Update{
			{Row: 2, Kind: MatchExact},
			{Row: 3, Kind: MatchFuzzy},
			{Row: 4, Kind: MatchFuzzy},
		},
	}

	if rep.Updated() != 3 {
		t.Errorf("Updated() = %d, expected 3", rep.Updated())
	}
	if rep.ExactCount() != 1 {
		t.Errorf("ExactCount() = %d, expected 1", rep.ExactCount())
	}
	if rep.FuzzyCount() != 2 {
		t.Errorf("FuzzyCount() = %d, expected 2", rep.FuzzyCount())
	}
}
