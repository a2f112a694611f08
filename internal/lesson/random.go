package lesson

import "math/rand"

// Randomizer is the source of randomness for forms, choices and ordering.
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRandomizer struct{}

func (globalRandomizer) Intn(n int) int {
	return rand.Intn(n)
}

func (globalRandomizer) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// sample returns k distinct elements of words picked at random.
func sample(r Randomizer, words []string, k int) []string {
	pool := append([]string(nil), words...)
	k = min(k, len(pool))
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
