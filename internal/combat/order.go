package combat

// Coin decides speed ties. Flip returning true means the first argument of
// Order acts first.
type Coin interface {
	Flip() bool
}

// CoinFunc adapts a plain function to Coin.
type CoinFunc func() bool

func (f CoinFunc) Flip() bool { return f() }

// Order sorts two actions by actor speed, fastest first. Equal speeds are
// settled by a single coin flip and reported through tie. HP is not read.
func Order(a, b Action, coin Coin) (first, second Action, tie bool) {
	sa, sb := a.Actor.Stats.Speed, b.Actor.Stats.Speed
	switch {
	case sa > sb:
		return a, b, false
	case sb > sa:
		return b, a, false
	}
	if coin.Flip() {
		return a, b, true
	}
	return b, a, true
}
