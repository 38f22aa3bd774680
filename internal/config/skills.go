package config

type SkillsConfig struct {
	Skills []SkillDef `yaml:"skills"`
}

// SkillDef describes one skill. Exactly one of BaseDamage (stat formula)
// or Damage (flat) must be set.
type SkillDef struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Elem       string `yaml:"elem"`
	BaseDamage *int   `yaml:"base_damage"`
	Physical   bool   `yaml:"physical"`
	Damage     *int   `yaml:"damage"`
	Note       string `yaml:"note"`
}

// Flat reports whether the skill uses the flat damage model.
func (s SkillDef) Flat() bool { return s.Damage != nil }
