// Package matcher scores destination keys against the source table.
// Fuzzy scoring is delegated to go-fuzzywuzzy, a port of the fuzzywuzzy
// library, so scores are 0-100 ratios.
package matcher

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/purusov/xltools-go/pkg/xltools/models"
)

// Scorer computes similarity ratios between two strings.
type Scorer struct {
	// Weighted selects WRatio instead of the simple QRatio.
	Weighted bool
}

// Score returns the similarity ratio of a and b in [0, 100].
func (s Scorer) Score(a, b string) int {
	if s.Weighted {
		return fuzzy.WRatio(a, b)
	}
	return fuzzy.QRatio(a, b)
}

// BestMatch scans the table in insertion order and returns the
// highest-scoring key. Ties keep the later key, so a key inserted from a
// later source row wins over an earlier one with the same score.
func (s Scorer) BestMatch(key string, table *models.SourceTable) (string, int) {
	best := ""
	bestScore := 0
	for _, candidate := range table.Keys() {
		if score := s.Score(key, candidate); score >= bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore
}

// RowKey is one destination row queued for fuzzy scoring.
type RowKey struct {
	Row int
	Key string
}

// RowMatch is the best candidate found for one destination row.
type RowMatch struct {
	Row   int
	Key   string
	Match string
	Score int
}

// BestMatches scores every queued row against the table, running up to
// workers scans concurrently. Results come back in input order; callers
// apply cell writes afterwards because excelize files must not be mutated
// from multiple goroutines.
func (s Scorer) BestMatches(rows []RowKey, table *models.SourceTable, workers int) []RowMatch {
	if workers < 1 {
		workers = 1
	}

	results := make([]RowMatch, len(rows))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, rk := range rows {
		i, rk := i, rk
		g.Go(func() error {
			match, score := s.BestMatch(rk.Key, table)
			results[i] = RowMatch{Row: rk.Row, Key: rk.Key, Match: match, Score: score}
			return nil
		})
	}
	// Scoring never fails; Wait only synchronizes the pool.
	_ = g.Wait()
	return results
}
