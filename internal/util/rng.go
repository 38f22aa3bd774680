package util

import "math/rand"

// New returns a rand.Rand seeded with seed. Zero is remapped to 1 so a
// missing seed flag still yields a reproducible run.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Coin breaks speed ties with a fair flip drawn from Rng and counts the
// flips it made.
type Coin struct {
	Rng   *rand.Rand
	Flips int
	Heads int
}

func NewCoin(seed int64) *Coin { return &Coin{Rng: New(seed)} }

func (c *Coin) Flip() bool {
	c.Flips++
	if c.Rng.Intn(2) == 0 {
		c.Heads++
		return true
	}
	return false
}
