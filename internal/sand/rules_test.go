package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirtGrowsGrassExactlyOnce(t *testing.T) {
	w := testWorld(3, 10, 8)
	rockRow(w, 9)
	put(w, 1, 8, Dirt(false, 195))

	w.Step()
	require.Equal(t, Dirt(false, 196), sub(w, 1, 8), "exposure should tick up under open air")

	conversions := 0
	prev := sub(w, 1, 8)
	for tick := 0; tick < 600; tick++ {
		w.Step()
		cur := sub(w, 1, 8)
		if prev.Kind() == KindDirt && cur.Kind() == KindGrass {
			conversions++
			assert.Equal(t, Grass(0, 5), cur, "fresh grass budget")
		}
		if conversions > 0 {
			require.Equal(t, KindGrass, cur.Kind(), "tick %d: grass reverted", tick)
		}
		prev = cur
	}
	assert.Equal(t, 1, conversions)
	// The stalk grows at most its budget above the original cell.
	for y := 0; y < 3; y++ {
		assert.Equal(t, KindVoid, sub(w, 1, y).Kind(), "row %d", y)
	}
	assert.Equal(t, KindGrass, sub(w, 1, 7).Kind(), "grass should have grown upward")
}

func TestDirtExposureResetsWhenCovered(t *testing.T) {
	w := testWorld(3, 3, 2)
	rockRow(w, 2)
	put(w, 1, 1, Dirt(false, 150))
	put(w, 1, 0, Rock())
	w.cfg.Params.ErosionChance = 0

	w.Step()

	assert.Equal(t, Dirt(false, 0), sub(w, 1, 1))
}

func TestDirtTurnsToMudOnWaterContact(t *testing.T) {
	w := testWorld(3, 3, 4)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			put(w, x, y, Water())
		}
	}
	put(w, 1, 1, Dirt(false, 40))

	w.Step()

	assert.Equal(t, Mud(false, 0), sub(w, 1, 1))
	c := w.Census()
	assert.Equal(t, 7, c.Count(KindWater), "one neighbor should be drained")
	assert.Equal(t, 1, c.Count(KindVoid))
}

func TestMudDriesBackToDirt(t *testing.T) {
	w := testWorld(3, 3, 4)
	rockRow(w, 2)
	w.cfg.Params.ErosionChance = 0
	put(w, 1, 1, Mud(false, 200))

	w.Step()

	assert.Equal(t, Dirt(false, 0), sub(w, 1, 1))
}

func TestMudSinksThroughWater(t *testing.T) {
	w := testWorld(3, 3, 6)
	rockRow(w, 2)
	w.cfg.Params.ErosionChance = 0
	for x := 0; x < 3; x++ {
		put(w, x, 1, Water())
	}
	put(w, 1, 0, Mud(false, 0))

	w.Step()

	c := w.Census()
	require.Equal(t, 1, c.Count(KindMud))
	require.Equal(t, 3, c.Count(KindWater))
	sunk := false
	for x := 0; x < 3; x++ {
		if sub(w, x, 1).Kind() == KindMud {
			sunk = true
			assert.True(t, sub(w, x, 1).Falling())
		}
	}
	assert.True(t, sunk, "mud should swap below into the water row")
}

func TestSandSinksThroughWater(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := testWorld(3, 3, seed)
		w.cfg.Params.ErosionChance = 0
		rockRow(w, 2)
		for x := 0; x < 3; x++ {
			put(w, x, 1, Water())
		}
		put(w, 1, 0, Sand(false))
		before := w.Census()

		w.Step()

		require.Equal(t, Water(), sub(w, 1, 0), "seed %d: water should take the origin cell", seed)
		sunk := 0
		for x := 0; x < 3; x++ {
			if sub(w, x, 1) == Sand(true) {
				sunk++
			}
		}
		assert.Equal(t, 1, sunk, "seed %d: sand should fall into the water row", seed)
		assert.Equal(t, before, w.Census(), "seed %d", seed)
	}
}

func TestDirtRestsOnRock(t *testing.T) {
	w := testWorld(1, 3, 6)
	put(w, 0, 0, Dirt(false, 0))
	put(w, 0, 1, Rock())
	w.cfg.Params.ErosionChance = 0

	w.Step()

	assert.Equal(t, KindDirt, sub(w, 0, 0).Kind())
}

func TestGrassRevertsUnderForeignCover(t *testing.T) {
	w := testWorld(3, 4, 2)
	w.cfg.Params.ErosionChance = 0
	put(w, 1, 2, Grass(0, 5))
	put(w, 1, 1, Rock())

	w.Step()

	assert.Equal(t, Dirt(false, 0), sub(w, 1, 2))
}

func TestGrassHoldsUnderFire(t *testing.T) {
	w := testWorld(3, 4, 2)
	w.cfg.Params.BurnChance = 0
	w.cfg.Params.IgniteChance = 0
	w.cfg.Params.SmokeSpawnChance = 0
	put(w, 1, 2, Grass(3, 5))
	put(w, 1, 1, Fire(10))

	w.Step()

	assert.Equal(t, Grass(3, 5), sub(w, 1, 2))
}

func TestGrassBudgetPropagatesDown(t *testing.T) {
	w := testWorld(3, 5, 2)
	w.cfg.Params.GrassGrowChance = 0
	put(w, 1, 3, Grass(0, 5))
	put(w, 1, 2, Grass(0, 3))

	w.Step()

	assert.Equal(t, Grass(0, 4), sub(w, 1, 3))
}

func TestGrassGrowsAfterDelay(t *testing.T) {
	w := testWorld(3, 4, 2)
	put(w, 1, 3, Grass(6, 5))

	w.Step()

	assert.Equal(t, Grass(0, 4), sub(w, 1, 2))
	assert.Equal(t, Grass(6, 5), sub(w, 1, 3))
}

func TestGrassTimerAdvances(t *testing.T) {
	w := testWorld(3, 4, 2)
	w.cfg.Params.GrassGrowChance = 1
	put(w, 1, 3, Grass(0, 5))

	w.Step()

	assert.Equal(t, Grass(1, 5), sub(w, 1, 3))
}

func TestFireAtZeroFuelTurnsToSmoke(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := testWorld(3, 3, seed)
		w.cfg.Params.BurnChance = 1
		w.cfg.Params.SmokeSpawnChance = 0
		put(w, 1, 1, Fire(0))

		w.Step()

		s := sub(w, 1, 1)
		require.Equal(t, KindSmoke, s.Kind(), "seed %d", seed)
		assert.GreaterOrEqual(t, int(s.Lifetime()), 100)
		assert.Less(t, int(s.Lifetime()), 250)
	}
}

func TestFireBurnsFuel(t *testing.T) {
	w := testWorld(3, 3, 1)
	w.cfg.Params.BurnChance = 1
	w.cfg.Params.SmokeSpawnChance = 0
	put(w, 1, 1, Fire(4))

	w.Step()

	assert.Equal(t, Fire(3), sub(w, 1, 1))
}

func TestFireIgnitesGrass(t *testing.T) {
	w := testWorld(3, 4, 12)
	w.cfg.Params.BurnChance = 0
	w.cfg.Params.IgniteChance = 1
	w.cfg.Params.GrassGrowChance = 0
	for y := 1; y < 4; y++ {
		for x := 0; x < 3; x++ {
			put(w, x, y, Grass(0, 0))
		}
	}
	put(w, 1, 2, Fire(10))

	w.Step()

	c := w.Census()
	assert.Equal(t, 2, c.Count(KindFire), "exactly one neighbor should catch")
	assert.Equal(t, 7, c.Count(KindGrass))
	assert.Equal(t, Fire(10), sub(w, 1, 2))
}

func TestFireSpawnsSmokeIntoVoid(t *testing.T) {
	w := testWorld(3, 3, 12)
	w.cfg.Params.BurnChance = 0
	w.cfg.Params.SmokeSpawnChance = 1
	put(w, 1, 1, Fire(10))

	w.Step()

	assert.Equal(t, 1, w.Census().Count(KindSmoke))
}

func TestSmokeExpires(t *testing.T) {
	w := testWorld(3, 3, 1)
	put(w, 1, 1, Smoke(0))

	w.Step()

	assert.Equal(t, Void(), sub(w, 1, 1))
	assert.Zero(t, w.Census().NonVoid())
}

func TestSmokeRises(t *testing.T) {
	w := testWorld(3, 3, 5)
	put(w, 1, 2, Smoke(10))

	w.Step()

	risen := 0
	for x := 0; x < 3; x++ {
		if s := sub(w, x, 1); s.Kind() == KindSmoke {
			risen++
			assert.Equal(t, Smoke(9), s)
		}
	}
	assert.Equal(t, 1, risen)
	assert.Equal(t, 1, w.Census().NonVoid())
}

func TestRockErodesBesideWater(t *testing.T) {
	w := testWorld(3, 3, 3)
	w.cfg.Params.ErosionChance = 1
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			put(w, x, y, Water())
		}
	}
	put(w, 1, 1, Rock())

	w.Step()

	assert.Equal(t, Sand(false), sub(w, 1, 1))
}

func TestRockIgnoresDryNeighbors(t *testing.T) {
	w := testWorld(3, 3, 3)
	w.cfg.Params.ErosionChance = 1
	put(w, 1, 1, Rock())
	put(w, 1, 2, Sand(false))

	for i := 0; i < 20; i++ {
		w.Step()
	}

	assert.Equal(t, Rock(), sub(w, 1, 1))
}

func TestSetRecolorsOnKindChange(t *testing.T) {
	w := testWorld(3, 3, 3)
	put(w, 1, 1, Smoke(0))

	w.Step()

	assert.Equal(t, KindVoid.Color(), w.u.Get(1, 1).Color, "void is never shaded")
}
