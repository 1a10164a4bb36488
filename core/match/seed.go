// core/match/seed.go
package match

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// seedLen returns the filtration seed length l = floor(n/(k+1)). Two length-n
// strings within k mismatches share an exact length-l substring at the same
// relative offset, so exact seed lookup can never drop a true match.
// Callers guarantee k+1 <= n, keeping l >= 1.
func seedLen(n, k int) int { return n / (k + 1) }

// buildSeedIndex maps each l-mer of block to the ascending relative offsets
// at which it occurs. Repeated l-mers keep every offset.
func buildSeedIndex(block []byte, l int) map[string][]int {
	idx := make(map[string][]int, len(block)-l+1)
	for r := 0; r+l <= len(block); r++ {
		km := string(block[r : r+l])
		idx[km] = append(idx[km], r)
	}
	return idx
}

// prefilter marks, once per Find call, the text positions whose l-mer could
// occur in any query window. The Bloom filter is loaded with every l-mer of
// the whole query — a superset of each window's seed set — so a filter miss
// can never hide a true candidate; false positives only cost a map lookup.
type prefilter struct {
	pass []bool
}

func newPrefilter(query, text []byte, l int) *prefilter {
	nq := len(query) - l + 1
	if nq <= 0 || len(text) < l {
		return nil
	}
	bf := bloom.NewWithEstimates(uint(nq), 0.01)
	for r := 0; r+l <= len(query); r++ {
		bf.Add(query[r : r+l])
	}
	pass := make([]bool, len(text)-l+1)
	for j := range pass {
		pass[j] = bf.Test(text[j : j+l])
	}
	return &prefilter{pass: pass}
}
