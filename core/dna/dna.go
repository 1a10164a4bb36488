// Package dna generates and perturbs nucleotide sequences for demos and
// tests. Randomness always comes from a caller-supplied source so runs are
// reproducible.
package dna

import "math/rand"

// Alphabet is the nucleotide alphabet used by the generators.
const Alphabet = "ACGT"

// Random returns a random sequence of the given length drawn from Alphabet.
func Random(rng *rand.Rand, length int) []byte {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = Alphabet[rng.Intn(len(Alphabet))]
	}
	return seq
}

// Mutate substitutes up to count positions of seq in place, each with a base
// different from the one it replaces. Positions are drawn with replacement,
// so fewer than count distinct positions may end up changed.
func Mutate(rng *rand.Rand, seq []byte, count int) {
	if len(seq) == 0 {
		return
	}
	for i := 0; i < count; i++ {
		idx := rng.Intn(len(seq))
		seq[idx] = otherBase(rng, seq[idx])
	}
}

func otherBase(rng *rand.Rand, b byte) byte {
	for {
		c := Alphabet[rng.Intn(len(Alphabet))]
		if c != b {
			return c
		}
	}
}
