package roster

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"battler/internal/combat"
	"battler/internal/config"
)

var ErrUnknownCreature = errors.New("unknown creature")

// Book indexes loaded definitions and spawns fresh creatures from them.
type Book struct {
	skills    map[string]combat.Skill
	creatures map[string]config.CreatureDef
	notes     map[string]string
	order     []string
}

// NewBook converts validated definitions. It re-checks every creature by
// building it once so bad data fails at startup rather than mid battle.
func NewBook(sc *config.SkillsConfig, cc *config.CreaturesConfig) (*Book, error) {
	b := &Book{
		skills:    map[string]combat.Skill{},
		creatures: map[string]config.CreatureDef{},
		notes:     map[string]string{},
	}
	for _, s := range sc.Skills {
		sk, err := skillFrom(s)
		if err != nil {
			return nil, err
		}
		b.skills[s.ID] = sk
		b.notes[s.ID] = s.Note
	}
	for _, c := range cc.Creatures {
		b.creatures[c.ID] = c
		b.order = append(b.order, c.ID)
		if _, err := b.Spawn(c.ID); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func skillFrom(s config.SkillDef) (combat.Skill, error) {
	name := s.Name
	if name == "" {
		name = s.ID
	}
	if s.Flat() {
		return combat.FlatSkill{Name: name, Damage: *s.Damage}, nil
	}
	if s.BaseDamage == nil {
		return nil, fmt.Errorf("skill %q: missing base_damage: %w", s.ID, config.ErrInvalid)
	}
	elem, err := config.ParseElement(s.Elem)
	if err != nil {
		return nil, fmt.Errorf("skill %q: %w", s.ID, err)
	}
	return combat.StatSkill{Name: name, BaseDamage: *s.BaseDamage, Elem: elem, Physical: s.Physical}, nil
}

// Spawn returns a new full-HP creature for id. Every call yields an
// independent value so parallel battles never share state.
func (b *Book) Spawn(id string) (*combat.Creature, error) {
	def, ok := b.creatures[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCreature, id)
	}
	elem, err := config.ParseElement(def.Element)
	if err != nil {
		return nil, fmt.Errorf("creature %q: %w", def.ID, err)
	}
	skills := make([]combat.Skill, 0, len(def.Skills))
	for _, ref := range def.Skills {
		sk, ok := b.skills[ref]
		if !ok {
			return nil, fmt.Errorf("creature %q: unknown skill %q: %w", def.ID, ref, config.ErrInvalid)
		}
		skills = append(skills, sk)
	}
	return combat.NewCreature(def.ID, def.Name, elem, combat.Stats{
		MaxHP:     def.MaxHP,
		Attack:    def.Attack,
		Defense:   def.Defense,
		SpAttack:  def.SpAttack,
		SpDefense: def.SpDefense,
		Speed:     def.Speed,
	}, skills)
}

// IDs returns creature ids in definition order.
func (b *Book) IDs() []string { return append([]string(nil), b.order...) }

// Def returns the raw definition of a creature.
func (b *Book) Def(id string) (config.CreatureDef, bool) {
	d, ok := b.creatures[id]
	return d, ok
}

// SkillInfo is a flattened view of a skill for listings.
type SkillInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Model      string `json:"model"`
	Elem       string `json:"elem,omitempty"`
	BaseDamage int    `json:"base_damage,omitempty"`
	Physical   bool   `json:"physical,omitempty"`
	Damage     int    `json:"damage,omitempty"`
	Note       string `json:"note,omitempty"`
}

// Skills lists every skill sorted by id.
func (b *Book) Skills() []SkillInfo {
	out := make([]SkillInfo, 0, len(b.skills))
	for id, sk := range b.skills {
		info := SkillInfo{ID: id, Name: combat.SkillName(sk), Note: b.notes[id]}
		switch v := sk.(type) {
		case combat.StatSkill:
			info.Model = "stat"
			info.Elem = v.Elem.String()
			info.BaseDamage = v.BaseDamage
			info.Physical = v.Physical
		case combat.FlatSkill:
			info.Model = "flat"
			info.Damage = v.Damage
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
