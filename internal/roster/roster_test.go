package roster

import (
	"errors"
	"path/filepath"
	"testing"

	"battler/internal/combat"
	"battler/internal/config"
	"battler/internal/element"
)

func intp(v int) *int { return &v }

func testBook(t *testing.T) *Book {
	t.Helper()
	sc := &config.SkillsConfig{Skills: []config.SkillDef{
		{ID: "ember", Name: "Ember", Elem: "fire", BaseDamage: intp(5), Physical: true},
		{ID: "scratch", Damage: intp(4)},
	}}
	cc := &config.CreaturesConfig{Creatures: []config.CreatureDef{
		{ID: "cub", Name: "Cub", Element: "fire", MaxHP: 20, Attack: 10, Defense: 5, Speed: 10, Skills: []string{"ember", "scratch"}},
		{ID: "rock", MaxHP: 30, Defense: 1, Speed: 5, Skills: []string{"scratch"}},
	}}
	b, err := NewBook(sc, cc)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	return b
}

func TestSpawn_BuildsFreshCreatures(t *testing.T) {
	b := testBook(t)
	c1, err := b.Spawn("cub")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if c1.Elem != element.Fire || c1.HP != 20 || c1.Name != "Cub" || len(c1.Skills) != 2 {
		t.Fatalf("unexpected creature %+v", c1)
	}
	if c1.Skills[0] != (combat.StatSkill{Name: "Ember", BaseDamage: 5, Elem: element.Fire, Physical: true}) {
		t.Fatalf("unexpected first skill %+v", c1.Skills[0])
	}
	if c1.Skills[1] != (combat.FlatSkill{Name: "scratch", Damage: 4}) {
		t.Fatalf("flat skill should fall back to id as name, got %+v", c1.Skills[1])
	}
	c1.HP = 1
	c2, _ := b.Spawn("cub")
	if c2.HP != 20 || c1 == c2 {
		t.Fatalf("spawned creatures must be independent")
	}
	rock, _ := b.Spawn("rock")
	if rock.Elem != element.Normal || rock.Name != "rock" {
		t.Fatalf("missing element and name should default, got %+v", rock)
	}
}

func TestSpawn_Unknown(t *testing.T) {
	if _, err := testBook(t).Spawn("dragon"); !errors.Is(err, ErrUnknownCreature) {
		t.Fatalf("expected ErrUnknownCreature, got %v", err)
	}
}

func TestBook_Listings(t *testing.T) {
	b := testBook(t)
	if ids := b.IDs(); len(ids) != 2 || ids[0] != "cub" || ids[1] != "rock" {
		t.Fatalf("unexpected ids %v", ids)
	}
	skills := b.Skills()
	if len(skills) != 2 || skills[0].ID != "ember" || skills[0].Model != "stat" || skills[1].Model != "flat" || skills[1].Damage != 4 {
		t.Fatalf("unexpected skill listing %+v", skills)
	}
}

func TestBook_Assets(t *testing.T) {
	sc, cc, err := config.LoadAll(filepath.Join("..", "..", "assets"))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	b, err := NewBook(sc, cc)
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	for _, id := range b.IDs() {
		if _, err := b.Spawn(id); err != nil {
			t.Fatalf("Spawn(%s): %v", id, err)
		}
	}
}
