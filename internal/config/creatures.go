package config

type CreaturesConfig struct {
	Creatures []CreatureDef `yaml:"creatures"`
}

type CreatureDef struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Element   string   `yaml:"element" json:"element"`
	MaxHP     int      `yaml:"max_hp" json:"max_hp"`
	Attack    int      `yaml:"attack" json:"attack"`
	Defense   int      `yaml:"defense" json:"defense"`
	SpAttack  int      `yaml:"sp_attack" json:"sp_attack"`
	SpDefense int      `yaml:"sp_defense" json:"sp_defense"`
	Speed     int      `yaml:"speed" json:"speed"`
	Skills    []string `yaml:"skills" json:"skills"`
	Note      string   `yaml:"note" json:"note,omitempty"`
}
