package rank

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// Scored is a candidate with its similarity to the query
type Scored struct {
	Text  string
	Score float64
}

// Scorer computes case-insensitive Jaro-Winkler similarity of candidates against one query.
// Scores are memoized per candidate, so a Scorer belongs to a single ranking pass
// and is not safe for concurrent use
type Scorer struct {
	query  string
	fold   cases.Caser
	metric *metrics.JaroWinkler
	cache  map[string]float64
	misses int
}

// NewScorer prepares a scorer for query; sizeHint presizes the memo table
func NewScorer(query string, sizeHint int) *Scorer {
	fold := cases.Fold()
	jw := metrics.NewJaroWinkler()
	// inputs are folded up front
	jw.CaseSensitive = true
	return &Scorer{
		query:  fold.String(query),
		fold:   fold,
		metric: jw,
		cache:  make(map[string]float64, sizeHint),
	}
}

// Score returns the similarity in [0, 1] of candidate to the query, computing it at most once
func (s *Scorer) Score(candidate string) float64 {
	if v, ok := s.cache[candidate]; ok {
		return v
	}
	s.misses++
	v := strutil.Similarity(s.query, s.fold.String(candidate), s.metric)
	s.cache[candidate] = v
	return v
}

// Computed reports how many distinct candidates were actually scored
func (s *Scorer) Computed() int { return s.misses }

// Compare puts higher scores first and breaks ties by text so the order is total
func (s *Scorer) Compare(a, b string) int {
	if c := Compare(s.Score(b), s.Score(a)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Rank returns the k candidates most similar to query, best first.
// candidates must be distinct and is not modified. It panics unless 0 <= k < len(candidates)
func Rank(query string, candidates []string, k int) []Scored {
	items := make([]string, len(candidates))
	copy(items, candidates)

	s := NewScorer(query, len(items))
	TopK(items, k, s.Compare)

	out := make([]Scored, k)
	for i, text := range items[:k] {
		out[i] = Scored{Text: text, Score: s.Score(text)}
	}
	return out
}

// Sorted ranks every candidate, best first; use it when k would cover the whole set
func Sorted(query string, candidates []string) []Scored {
	items := make([]string, len(candidates))
	copy(items, candidates)

	s := NewScorer(query, len(items))
	slices.SortFunc(items, s.Compare)

	out := make([]Scored, len(items))
	for i, text := range items {
		out[i] = Scored{Text: text, Score: s.Score(text)}
	}
	return out
}
