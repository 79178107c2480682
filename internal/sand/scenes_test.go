package sand

import (
	"testing"

	pcore "sandfall/pkg/core"
)

func TestScenesRegistered(t *testing.T) {
	want := []string{"bands", "empty", "meadow", "pond"}
	got := SceneNames()
	if len(got) != len(want) {
		t.Fatalf("scenes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scenes = %v, want %v", got, want)
		}
	}
}

func TestScenesFitSmallGrids(t *testing.T) {
	for _, name := range SceneNames() {
		for _, size := range [][2]int{{1, 1}, {8, 8}, {40, 30}} {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height, cfg.Seed, cfg.Scene = size[0], size[1], 17, name
			w := NewWithConfig(cfg)
			w.Reset(0)
			for i := 0; i < 10; i++ {
				w.Step()
			}
		}
	}
}

func TestMeadowSceneContents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed, cfg.Scene = 64, 48, 3, "meadow"
	w := NewWithConfig(cfg)
	w.Reset(0)
	c := w.Census()
	for _, k := range []Kind{KindRock, KindDirt, KindWater, KindGrass, KindFire} {
		if c.Count(k) == 0 {
			t.Fatalf("meadow scene has no %v: %v", k, c)
		}
	}
}

func TestRegisterSceneIgnoresInvalid(t *testing.T) {
	before := len(Scenes())
	RegisterScene("", func(*Universe, *pcore.RNG) {})
	RegisterScene("nil", nil)
	if len(Scenes()) != before {
		t.Fatal("invalid registrations should be ignored")
	}
}
