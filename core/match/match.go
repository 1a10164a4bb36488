// Package match implements l-mer filtration for bounded-Hamming-distance
// n-mer matching: every length-n window of the query is indexed by its exact
// length-l seeds (l = n/(k+1)), the text is scanned for seed hits, and each
// candidate alignment is verified by explicit mismatch counting. Any two
// n-mers within k mismatches must share an exact l-mer at the same relative
// offset, so filtration generates no false negatives; verification removes
// the false positives.
package match

import (
	"errors"
	"fmt"
	"sort"
)

// Pair records one verified alignment: the n-mer starting at QueryStart in
// the query and the n-mer starting at TextStart in the text differ in
// Mismatches positions. Starts are 1-based.
type Pair struct {
	QueryStart int
	TextStart  int
	Mismatches int
}

// Config holds matching parameters.
type Config struct {
	N         int  // length of matched substrings
	K         int  // max mismatches per alignment
	Threads   int  // worker goroutines for FindContext (0 = all CPUs)
	Prefilter bool // Bloom-prescreen text positions before the window scans
}

var (
	ErrWindowLength   = errors.New("window length must be positive")
	ErrMismatchBudget = errors.New("max mismatches must be non-negative")
	ErrDegenerateSeed = errors.New("k+1 exceeds n; seed length would be zero")
)

// Matcher finds approximate n-mer occurrences with given config.
type Matcher struct {
	cfg Config
}

// New creates a new Matcher.
func New(c Config) *Matcher { return &Matcher{cfg: c} }

// validate rejects parameter combinations before any indexing work begins.
// k+1 > n is refused outright: with a zero-length seed every text position
// becomes a candidate and the filtration guarantee no longer holds.
func (m *Matcher) validate() error {
	if m.cfg.N <= 0 {
		return fmt.Errorf("match: %w (n=%d)", ErrWindowLength, m.cfg.N)
	}
	if m.cfg.K < 0 {
		return fmt.Errorf("match: %w (k=%d)", ErrMismatchBudget, m.cfg.K)
	}
	if m.cfg.K+1 > m.cfg.N {
		return fmt.Errorf("match: %w (n=%d k=%d)", ErrDegenerateSeed, m.cfg.N, m.cfg.K)
	}
	return nil
}

// Find returns every (QueryStart, TextStart) pair whose n-mers are within K
// mismatches, deduplicated and sorted ascending by (QueryStart, TextStart).
// When no length-n window fits in either input the result is empty, not an
// error. Find is pure: it retains no state across calls.
func (m *Matcher) Find(query, text []byte) ([]Pair, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	n := m.cfg.N
	if n > len(query) || n > len(text) {
		return nil, nil
	}
	l := seedLen(n, m.cfg.K)

	var pre *prefilter
	if m.cfg.Prefilter {
		pre = newPrefilter(query, text, l)
	}

	set := make(map[posKey]int)
	for i := 0; i+n <= len(query); i++ {
		m.scanWindow(query, text, i, l, pre, set)
	}
	return collect(set), nil
}

// scanWindow slides the seed window across the text for one query offset and
// records verified alignments into set. The seed index lives only for this
// call.
func (m *Matcher) scanWindow(query, text []byte, i, l int, pre *prefilter, set map[posKey]int) {
	n, k := m.cfg.N, m.cfg.K
	block := query[i : i+n]
	idx := buildSeedIndex(block, l)

	for j := 0; j+l <= len(text); j++ {
		if pre != nil && !pre.pass[j] {
			continue
		}
		offs, ok := idx[string(text[j:j+l])]
		if !ok {
			continue
		}
		for _, r := range offs {
			j0 := j - r // candidate full-alignment start
			if j0 < 0 || j0+n > len(text) {
				continue
			}
			if mm, ok := distanceWithin(block, text[j0:j0+n], k); ok {
				set[posKey{i + 1, j0 + 1}] = mm
			}
		}
	}
}

// posKey identifies an alignment by its 1-based starts; the same alignment
// reached through different shared seeds collapses to one entry.
type posKey struct {
	q, t int
}

func collect(set map[posKey]int) []Pair {
	if len(set) == 0 {
		return nil
	}
	out := make([]Pair, 0, len(set))
	for k, mm := range set {
		out = append(out, Pair{QueryStart: k.q, TextStart: k.t, Mismatches: mm})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QueryStart != out[j].QueryStart {
			return out[i].QueryStart < out[j].QueryStart
		}
		return out[i].TextStart < out[j].TextStart
	})
	return out
}
