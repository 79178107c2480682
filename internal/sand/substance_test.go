package sand

import "testing"

func TestDefaultInstances(t *testing.T) {
	cases := map[Kind]Substance{
		KindVoid:        Void(),
		KindOutOfBounds: Void(),
		KindSand:        Sand(false),
		KindRock:        Rock(),
		KindWater:       Water(),
		KindDirt:        Dirt(false, 0),
		KindMud:         Mud(false, 0),
		KindGrass:       Grass(0, 5),
		KindFire:        Fire(10),
		KindSmoke:       Smoke(150),
	}
	for kind, want := range cases {
		if got := Default(kind); got != want {
			t.Fatalf("Default(%v) = %v, want %v", kind, got, want)
		}
	}
}

func TestCountersBelongToTheirVariant(t *testing.T) {
	if got := Dirt(true, 9).Exposure(); got != 9 {
		t.Fatalf("dirt exposure = %d", got)
	}
	if got := Mud(false, 3).Exposure(); got != 3 {
		t.Fatalf("mud exposure = %d", got)
	}
	g := Grass(4, 2)
	if g.GrowTicks() != 4 || g.RemainingHeight() != 2 {
		t.Fatalf("grass counters = %d/%d", g.GrowTicks(), g.RemainingHeight())
	}
	if Fire(6).Fuel() != 6 || Smoke(200).Lifetime() != 200 {
		t.Fatal("fire or smoke counter lost")
	}
	// Reading another variant's counter yields zero.
	if Fire(6).Lifetime() != 0 || Smoke(9).Fuel() != 0 || Grass(1, 1).Exposure() != 0 {
		t.Fatal("counter leaked across variants")
	}
	if Sand(true) == Sand(false) {
		t.Fatal("falling flag must distinguish sand values")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if k, ok := ParseKind(" Water "); !ok || k != KindWater {
		t.Fatalf("ParseKind should trim and fold case, got %v %v", k, ok)
	}
	if _, ok := ParseKind("out-of-bounds"); ok {
		t.Fatal("the sentinel must not be paintable")
	}
	if _, ok := ParseKind("lava"); ok {
		t.Fatal("unknown kind parsed")
	}
}

func TestSubstanceLabels(t *testing.T) {
	cases := map[Substance]string{
		Void():          "void",
		OutOfBounds():   "out-of-bounds",
		Sand(true):      "sand(falling=true)",
		Dirt(false, 12): "dirt(falling=false, exposure=12)",
		Mud(true, 1):    "mud(falling=true, exposure=1)",
		Grass(3, 5):     "grass(grow=3, remaining=5)",
		Fire(10):        "fire(fuel=10)",
		Smoke(99):       "smoke(lifetime=99)",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
	if got := Kind(200).String(); got != "kind(200)" {
		t.Fatalf("unknown kind label = %q", got)
	}
}
