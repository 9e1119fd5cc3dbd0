package models

import "time"

// MatchKind describes how a destination row was matched.
type MatchKind string

const (
	// MatchExact means the destination key was found in the source table verbatim.
	MatchExact MatchKind = "exact"
	// MatchFuzzy means the destination key was matched by similarity score.
	MatchFuzzy MatchKind = "fuzzy"
)

// Update records one destination cell that was rewritten.
type Update struct {
	Row        int
	Cell       string
	Key        string
	MatchedKey string
	Score      int
	Kind       MatchKind
}

// Report summarizes a merge run.
type Report struct {
	SourceRows int
	DestRows   int
	Updates    []Update
	// Unchanged counts rows that matched but already held the source value.
	Unchanged int
	// Skipped counts rows with an empty key or no acceptable match.
	Skipped int
	Elapsed time.Duration
}

// Updated returns the number of rewritten cells.
func (r *Report) Updated() int {
	return len(r.Updates)
}

// ExactCount returns the number of cells updated by literal match.
func (r *Report) ExactCount() int {
	return r.countKind(MatchExact)
}

// FuzzyCount returns the number of cells updated by fuzzy match.
func (r *Report) FuzzyCount() int {
	return r.countKind(MatchFuzzy)
}

func (r *Report) countKind(kind MatchKind) int {
	n := 0
	for _, u := range r.Updates {
		if u.Kind == kind {
			n++
		}
	}
	return n
}
