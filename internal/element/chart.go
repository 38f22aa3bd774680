package element

const (
	Weak    = 0.5
	Neutral = 1.0
	Strong  = 2.0
)

// Effectiveness returns the damage multiplier of a skill of type atk hitting
// a defender of type def. It is total: any pair not listed is Neutral,
// including types added later without a chart entry.
func Effectiveness(atk, def Type) float64 {
	switch atk {
	case Fire:
		switch def {
		case Leaf:
			return Strong
		case Water:
			return Weak
		}
	case Water:
		switch def {
		case Fire:
			return Strong
		case Leaf:
			return Weak
		}
	case Leaf:
		switch def {
		case Water:
			return Strong
		case Fire:
			return Weak
		}
	}
	return Neutral
}

// Describe returns the battle-log label for a multiplier.
func Describe(mult float64) string {
	switch {
	case mult > Neutral:
		return "super effective"
	case mult < Neutral:
		return "not very effective"
	}
	return ""
}
