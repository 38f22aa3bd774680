package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

const okSkills = `
skills:
  - id: ember
    name: Ember
    elem: fire
    base_damage: 5
    physical: true
  - id: scratch
    name: Scratch
    damage: 4
`

const okCreatures = `
creatures:
  - id: cub
    name: Cub
    element: fire
    max_hp: 20
    attack: 8
    speed: 5
    skills: [ember, scratch]
`

func TestLoadAll_Assets(t *testing.T) {
	sc, cc, err := LoadAll(filepath.Join("..", "..", "assets"))
	if err != nil {
		t.Fatalf("unexpected error loading bundled assets: %v", err)
	}
	if len(sc.Skills) == 0 || len(cc.Creatures) == 0 {
		t.Fatalf("expected bundled skills and creatures")
	}
}

func TestLoadAll_Valid(t *testing.T) {
	dir := writeFiles(t, map[string]string{"skills.yaml": okSkills, "creatures.yaml": okCreatures})
	sc, cc, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Skills) != 2 || !sc.Skills[1].Flat() || sc.Skills[0].Flat() {
		t.Fatalf("unexpected skills %+v", sc.Skills)
	}
	if *sc.Skills[0].BaseDamage != 5 || *sc.Skills[1].Damage != 4 {
		t.Fatalf("damage values not decoded")
	}
	if cc.Creatures[0].MaxHP != 20 || len(cc.Creatures[0].Skills) != 2 {
		t.Fatalf("unexpected creature %+v", cc.Creatures[0])
	}
}

func TestLoadAll_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		skills    string
		creatures string
		want      error
	}{
		{
			name:      "unknown skill element",
			skills:    "skills:\n  - id: zap\n    elem: storm\n    base_damage: 3\n",
			creatures: "creatures:\n  - id: c\n    max_hp: 5\n    skills: [zap]\n",
			want:      ErrUnknownElement,
		},
		{
			name:      "unknown creature element",
			skills:    okSkills,
			creatures: "creatures:\n  - id: c\n    element: void\n    max_hp: 5\n    skills: [ember]\n",
			want:      ErrUnknownElement,
		},
		{
			name:      "both damage models",
			skills:    "skills:\n  - id: x\n    base_damage: 3\n    damage: 3\n",
			creatures: "creatures:\n  - id: c\n    max_hp: 5\n    skills: [x]\n",
			want:      ErrInvalid,
		},
		{
			name:      "no damage model",
			skills:    "skills:\n  - id: x\n    elem: fire\n",
			creatures: "creatures:\n  - id: c\n    max_hp: 5\n    skills: [x]\n",
			want:      ErrInvalid,
		},
		{
			name:      "empty skill list",
			skills:    okSkills,
			creatures: "creatures:\n  - id: c\n    max_hp: 5\n",
			want:      ErrInvalid,
		},
		{
			name:      "dangling skill reference",
			skills:    okSkills,
			creatures: "creatures:\n  - id: c\n    max_hp: 5\n    skills: [solar_beam]\n",
			want:      ErrInvalid,
		},
		{
			name:      "duplicate creature",
			skills:    okSkills,
			creatures: "creatures:\n  - id: c\n    max_hp: 5\n    skills: [ember]\n  - id: c\n    max_hp: 5\n    skills: [ember]\n",
			want:      ErrInvalid,
		},
		{
			name:      "zero hp",
			skills:    okSkills,
			creatures: "creatures:\n  - id: c\n    skills: [ember]\n",
			want:      ErrInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFiles(t, map[string]string{"skills.yaml": tc.skills, "creatures.yaml": tc.creatures})
			if _, _, err := LoadAll(dir); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"skills.yaml": okSkills})
	if _, _, err := LoadAll(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadServer_Defaults(t *testing.T) {
	sc, err := LoadServer(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Server.Address != DefaultAddress || sc.Server.DB != DefaultDB || sc.Battle.MaxRounds != DefaultMaxRounds || sc.Sim.Workers != DefaultWorkers {
		t.Fatalf("expected defaults, got %+v", sc)
	}
}

func TestLoadServer_Overrides(t *testing.T) {
	dir := writeFiles(t, map[string]string{"server.yaml": "server:\n  address: \":9000\"\nbattle:\n  max_rounds: 50\n"})
	sc, err := LoadServer(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Server.Address != ":9000" || sc.Battle.MaxRounds != 50 || sc.Sim.Workers != DefaultWorkers {
		t.Fatalf("unexpected server config %+v", sc)
	}
}

func TestParseElement(t *testing.T) {
	if e, err := ParseElement(""); err != nil || e.String() != "normal" {
		t.Fatalf("empty element should default to normal, got %v (%v)", e, err)
	}
	if _, err := ParseElement("ghost"); !errors.Is(err, ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
}
