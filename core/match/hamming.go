// core/match/hamming.go
package match

// Distance returns the Hamming distance between two equal-length sequences.
// Panics on unequal lengths; inside the matcher both slices are length n by
// construction.
func Distance(a, b []byte) int {
	if len(a) != len(b) {
		panic("match: Distance on unequal lengths")
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// distanceWithin counts mismatches between equal-length a and b, bailing out
// once the running count exceeds max. Early exit never changes the
// accept/reject outcome, only the work done on rejected candidates.
func distanceWithin(a, b []byte, max int) (int, bool) {
	mm := 0
	for i := range a {
		if a[i] != b[i] {
			mm++
			if mm > max {
				return mm, false
			}
		}
	}
	return mm, true
}
