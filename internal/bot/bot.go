package bot

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"battler/internal/combat"
)

var (
	ErrUnknownPolicy = errors.New("unknown bot policy")
	ErrUnknownSkill  = errors.New("scripted skill not known by creature")
)

const (
	PolicyFirst     = "first"
	PolicyRandom    = "random"
	PolicyStrongest = "strongest"
)

// Policies lists the names accepted by New.
func Policies() []string { return []string{PolicyFirst, PolicyRandom, PolicyStrongest} }

// New builds a choice source by policy name. rng is only used by random.
func New(policy string, rng *rand.Rand) (combat.ChoiceSource, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyFirst:
		return First{}, nil
	case PolicyRandom:
		if rng == nil {
			return nil, fmt.Errorf("%s policy needs a random source", PolicyRandom)
		}
		return &Random{Rng: rng}, nil
	case PolicyStrongest:
		return Strongest{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
}

// First always uses the creature's first skill.
type First struct{}

func (First) Choose(_ *combat.Battle, self, _ *combat.Creature) (combat.Skill, error) {
	return self.Skills[0], nil
}

// Random picks uniformly among the creature's skills.
type Random struct {
	Rng *rand.Rand
}

func (r *Random) Choose(_ *combat.Battle, self, _ *combat.Creature) (combat.Skill, error) {
	return self.Skills[r.Rng.Intn(len(self.Skills))], nil
}

// Strongest uses the skill with the highest damage against the current
// opponent. Ties go to the earlier skill in the list.
type Strongest struct{}

func (Strongest) Choose(_ *combat.Battle, self, opp *combat.Creature) (combat.Skill, error) {
	best, bestDmg := self.Skills[0], -1
	for _, sk := range self.Skills {
		if d := combat.ComputeDamage(self, opp, sk); d > bestDmg {
			best, bestDmg = sk, d
		}
	}
	return best, nil
}

// Scripted plays skills by name in order and loops when it runs out.
type Scripted struct {
	Names []string
	next  int
}

func NewScripted(names ...string) *Scripted { return &Scripted{Names: names} }

func (s *Scripted) Choose(_ *combat.Battle, self, _ *combat.Creature) (combat.Skill, error) {
	if len(s.Names) == 0 {
		return self.Skills[0], nil
	}
	name := s.Names[s.next%len(s.Names)]
	s.next++
	for _, sk := range self.Skills {
		if strings.EqualFold(combat.SkillName(sk), name) {
			return sk, nil
		}
	}
	return nil, fmt.Errorf("%s: %w: %q", self.ID, ErrUnknownSkill, name)
}
