package combat

import (
	"errors"
	"fmt"

	"battler/internal/element"
)

var (
	ErrNoSkills     = errors.New("creature has no skills")
	ErrInvalidStats = errors.New("invalid creature stats")
	ErrNilSkill     = errors.New("nil skill")
)

// Event is one entry of the battle log. Payload keys depend on Type.
type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventBattleStart = "BattleStart"
	EventRoundStart  = "RoundStart"
	EventOrder       = "Order"
	EventStrike      = "Strike"
	EventFaint       = "Faint"
	EventBattleEnd   = "BattleEnd"
)

// Stats is the immutable stat block of a creature.
type Stats struct {
	MaxHP     int `json:"max_hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Skill is either a StatSkill or a FlatSkill.
type Skill interface {
	skillName() string
}

// StatSkill damage scales with the attacker's and defender's stats and the
// element chart.
type StatSkill struct {
	Name       string
	BaseDamage int
	Elem       element.Type
	Physical   bool
}

// FlatSkill always deals Damage, ignoring stats and elements.
type FlatSkill struct {
	Name   string
	Damage int
}

func (s StatSkill) skillName() string { return s.Name }
func (s FlatSkill) skillName() string { return s.Name }

// SkillName returns the display name of s, or "" when s is nil.
func SkillName(s Skill) string {
	if s == nil {
		return ""
	}
	return s.skillName()
}

// Creature is one combatant. HP is the only field that changes during a
// battle; the engine keeps it within [0, Stats.MaxHP].
type Creature struct {
	ID     string
	Name   string
	HP     int
	Stats  Stats
	Elem   element.Type
	Skills []Skill
}

// NewCreature validates the definition and returns a creature at full HP.
func NewCreature(id, name string, elem element.Type, st Stats, skills []Skill) (*Creature, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSkills)
	}
	for i, s := range skills {
		if s == nil {
			return nil, fmt.Errorf("%s: skill %d: %w", id, i, ErrNilSkill)
		}
		switch v := s.(type) {
		case StatSkill:
			if v.BaseDamage < 0 {
				return nil, fmt.Errorf("%s: skill %q has negative base damage: %w", id, v.Name, ErrInvalidStats)
			}
		case FlatSkill:
			if v.Damage < 0 {
				return nil, fmt.Errorf("%s: skill %q has negative damage: %w", id, v.Name, ErrInvalidStats)
			}
		}
	}
	if st.MaxHP <= 0 {
		return nil, fmt.Errorf("%s: max hp must be positive: %w", id, ErrInvalidStats)
	}
	if st.Attack < 0 || st.Defense < 0 || st.SpAttack < 0 || st.SpDefense < 0 || st.Speed < 0 {
		return nil, fmt.Errorf("%s: stats must not be negative: %w", id, ErrInvalidStats)
	}
	if name == "" {
		name = id
	}
	return &Creature{
		ID:     id,
		Name:   name,
		HP:     st.MaxHP,
		Stats:  st,
		Elem:   elem,
		Skills: append([]Skill(nil), skills...),
	}, nil
}

func (c *Creature) Fainted() bool { return c.HP <= 0 }

// Knows reports whether s is one of the creature's skills.
func (c *Creature) Knows(s Skill) bool {
	for _, k := range c.Skills {
		if k == s {
			return true
		}
	}
	return false
}

// Heal restores full HP.
func (c *Creature) Heal() { c.HP = c.Stats.MaxHP }

// takeDamage removes up to n HP and returns the amount actually removed.
func (c *Creature) takeDamage(n int) int {
	if n <= 0 || c.HP <= 0 {
		return 0
	}
	if n > c.HP {
		n = c.HP
	}
	c.HP -= n
	return n
}

// Action is one creature using one skill on a target for a single round.
type Action struct {
	Actor  *Creature
	Skill  Skill
	Target *Creature
}
