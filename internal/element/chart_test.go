package element

import "testing"

func TestEffectiveness_Cycle(t *testing.T) {
	cycle := [][2]Type{{Fire, Leaf}, {Leaf, Water}, {Water, Fire}}
	for _, pair := range cycle {
		strong, weak := pair[0], pair[1]
		if got := Effectiveness(strong, weak); got != Strong {
			t.Errorf("%s -> %s: expected %v, got %v", strong, weak, Strong, got)
		}
		if got := Effectiveness(weak, strong); got != Weak {
			t.Errorf("%s -> %s: expected %v, got %v", weak, strong, Weak, got)
		}
	}
}

func TestEffectiveness_NeutralDefault(t *testing.T) {
	nonNeutral := map[[2]Type]bool{
		{Fire, Leaf}: true, {Fire, Water}: true,
		{Water, Fire}: true, {Water, Leaf}: true,
		{Leaf, Water}: true, {Leaf, Fire}: true,
	}
	for _, atk := range All() {
		for _, def := range All() {
			if nonNeutral[[2]Type{atk, def}] {
				continue
			}
			if got := Effectiveness(atk, def); got != Neutral {
				t.Errorf("%s -> %s: expected neutral, got %v", atk, def, got)
			}
		}
	}
}

func TestEffectiveness_UnknownTypes(t *testing.T) {
	unknown := Type(42)
	if unknown.Known() {
		t.Fatalf("expected Type(42) to be unknown")
	}
	for _, other := range All() {
		if got := Effectiveness(unknown, other); got != Neutral {
			t.Errorf("unknown -> %s: expected neutral, got %v", other, got)
		}
		if got := Effectiveness(other, unknown); got != Neutral {
			t.Errorf("%s -> unknown: expected neutral, got %v", other, got)
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Type{"fire": Fire, " Water ": Water, "LEAF": Leaf, "normal": Normal}
	for in, want := range cases {
		got, ok := Parse(in)
		if !ok || got != want {
			t.Errorf("Parse(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := Parse("storm"); ok {
		t.Errorf("expected storm to be rejected")
	}
}

func TestUnmarshalText(t *testing.T) {
	var e Type
	if err := e.UnmarshalText([]byte("water")); err != nil || e != Water {
		t.Fatalf("expected water, got %v (%v)", e, err)
	}
	if err := e.UnmarshalText([]byte("psychic")); err == nil {
		t.Fatalf("expected error for unknown element")
	}
}

func TestDescribe(t *testing.T) {
	if Describe(Strong) != "super effective" || Describe(Weak) != "not very effective" || Describe(Neutral) != "" {
		t.Fatalf("unexpected labels")
	}
}
