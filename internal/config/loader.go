package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"battler/internal/element"
)

var (
	ErrUnknownElement = errors.New("unknown element")
	ErrInvalid        = errors.New("invalid definition")
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadAll reads skills.yaml and creatures.yaml from dir and validates them
// against each other.
func LoadAll(dir string) (*SkillsConfig, *CreaturesConfig, error) {
	var sc SkillsConfig
	var cc CreaturesConfig
	if err := loadYAML(filepath.Join(dir, "skills.yaml"), &sc); err != nil {
		return nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "creatures.yaml"), &cc); err != nil {
		return nil, nil, err
	}
	if err := Validate(&sc, &cc); err != nil {
		return nil, nil, err
	}
	return &sc, &cc, nil
}

// Validate checks ids are unique, elements are known, each skill uses
// exactly one damage model and every creature skill reference resolves.
func Validate(sc *SkillsConfig, cc *CreaturesConfig) error {
	skillIDs := make(map[string]struct{}, len(sc.Skills))
	for _, s := range sc.Skills {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return fmt.Errorf("skill %q: missing id: %w", s.Name, ErrInvalid)
		}
		if _, dup := skillIDs[id]; dup {
			return fmt.Errorf("duplicate skill id %q: %w", id, ErrInvalid)
		}
		skillIDs[id] = struct{}{}
		switch {
		case s.Damage != nil && s.BaseDamage != nil:
			return fmt.Errorf("skill %q: set either damage or base_damage, not both: %w", id, ErrInvalid)
		case s.Damage == nil && s.BaseDamage == nil:
			return fmt.Errorf("skill %q: missing damage or base_damage: %w", id, ErrInvalid)
		case s.Damage != nil && *s.Damage < 0, s.BaseDamage != nil && *s.BaseDamage < 0:
			return fmt.Errorf("skill %q: damage must not be negative: %w", id, ErrInvalid)
		}
		if !s.Flat() {
			if _, ok := element.Parse(elemOrNormal(s.Elem)); !ok {
				return fmt.Errorf("skill %q: %w %q", id, ErrUnknownElement, s.Elem)
			}
		}
	}

	if len(cc.Creatures) == 0 {
		return fmt.Errorf("no creatures defined: %w", ErrInvalid)
	}
	creatureIDs := make(map[string]struct{}, len(cc.Creatures))
	for _, c := range cc.Creatures {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return fmt.Errorf("creature %q: missing id: %w", c.Name, ErrInvalid)
		}
		if _, dup := creatureIDs[id]; dup {
			return fmt.Errorf("duplicate creature id %q: %w", id, ErrInvalid)
		}
		creatureIDs[id] = struct{}{}
		if _, ok := element.Parse(elemOrNormal(c.Element)); !ok {
			return fmt.Errorf("creature %q: %w %q", id, ErrUnknownElement, c.Element)
		}
		if c.MaxHP <= 0 {
			return fmt.Errorf("creature %q: max_hp must be positive: %w", id, ErrInvalid)
		}
		if len(c.Skills) == 0 {
			return fmt.Errorf("creature %q: needs at least one skill: %w", id, ErrInvalid)
		}
		for _, ref := range c.Skills {
			if _, ok := skillIDs[ref]; !ok {
				return fmt.Errorf("creature %q: unknown skill %q: %w", id, ref, ErrInvalid)
			}
		}
	}
	return nil
}

// elemOrNormal treats an omitted element as normal.
func elemOrNormal(s string) string {
	if strings.TrimSpace(s) == "" {
		return element.Normal.String()
	}
	return s
}

// ParseElement resolves a definition's element name, defaulting to normal.
func ParseElement(s string) (element.Type, error) {
	t, ok := element.Parse(elemOrNormal(s))
	if !ok {
		return element.Normal, fmt.Errorf("%w %q", ErrUnknownElement, s)
	}
	return t, nil
}
