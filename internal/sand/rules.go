package sand

// dispatch runs the transition rule for s, the substance of the anchor cell.
// Kinds without a rule, including any unknown kind, are left untouched.
func dispatch(l *Local, s Substance) {
	switch s.Kind() {
	case KindSand:
		updateSand(l, s)
	case KindRock:
		updateRock(l)
	case KindWater:
		updateWater(l)
	case KindDirt:
		updateDirt(l, s)
	case KindMud:
		updateMud(l, s)
	case KindGrass:
		updateGrass(l, s)
	case KindFire:
		updateFire(l, s)
	case KindSmoke:
		updateSmoke(l, s)
	}
}

func updateRock(l *Local) {
	dx, dy := l.Neighbor()
	if l.Get(dx, dy).Substance.Kind() == KindWater && l.Chance(l.params.ErosionChance) {
		l.Set(0, 0, Sand(false))
	}
}

func updateSand(l *Local, s Substance) {
	offset := 0
	if !s.Falling() {
		offset = l.Offset()
	}
	if l.Get(offset, 1).Substance.Is(KindVoid, KindWater) {
		l.Set(0, 0, Sand(true))
		l.Swap(offset, 1)
		return
	}
	if s.Falling() {
		l.Set(0, 0, Sand(false))
	}
}

func updateWater(l *Local) {
	dx := l.Offset()
	if l.Get(dx, 1).Substance.Kind() == KindVoid {
		l.Swap(dx, 1)
		return
	}
	dx = l.Offset()
	if l.Get(dx, 0).Substance.Kind() == KindVoid {
		l.Swap(dx, 0)
	}
}

func updateDirt(l *Local, s Substance) {
	dx, dy := l.Neighbor()
	if l.Get(dx, dy).Substance.Kind() == KindWater {
		l.Set(0, 0, Mud(false, 0))
		l.Set(dx, dy, Void())
		return
	}
	if fall(l, s, Dirt, KindVoid) {
		return
	}
	exposure, open := exposed(l, s)
	switch {
	case !open:
		l.Set(0, 0, Dirt(false, 0))
	case int(exposure) > l.params.ExposureThreshold:
		l.Set(0, 0, Grass(0, uint8(l.params.GrassHeight)))
	default:
		l.Set(0, 0, Dirt(false, exposure))
	}
}

func updateMud(l *Local, s Substance) {
	if fall(l, s, Mud, KindVoid, KindWater) {
		return
	}
	exposure, open := exposed(l, s)
	switch {
	case !open:
		l.Set(0, 0, Mud(false, 0))
	case int(exposure) > l.params.ExposureThreshold:
		l.Set(0, 0, Dirt(false, 0))
	default:
		l.Set(0, 0, Mud(false, exposure))
	}
}

// fall moves a granular substance one row down when the target below holds
// one of the passable kinds. Resting cells pick a random diagonal once;
// falling cells drop straight down. It reports whether the cell moved.
func fall(l *Local, s Substance, variant func(falling bool, exposure uint8) Substance, passable ...Kind) bool {
	offset := 0
	if !s.Falling() {
		offset = l.Offset()
	}
	if !l.Get(offset, 1).Substance.Is(passable...) {
		return false
	}
	l.Set(0, 0, variant(true, s.Exposure()))
	l.Swap(offset, 1)
	return true
}

// exposed returns the next exposure count for a resting Dirt or Mud cell and
// whether the cell directly above is open air.
func exposed(l *Local, s Substance) (uint8, bool) {
	if l.Get(0, -1).Substance.Kind() != KindVoid {
		return 0, false
	}
	e := s.Exposure()
	if e < 255 {
		e++
	}
	return e, true
}

func updateGrass(l *Local, s Substance) {
	above := l.Get(0, -1).Substance
	switch above.Kind() {
	case KindVoid:
		if int(s.GrowTicks()) > l.params.GrassGrowDelay && s.RemainingHeight() > 0 {
			l.Set(0, -1, Grass(0, s.RemainingHeight()-1))
			return
		}
		if s.GrowTicks() < 255 && l.Chance(l.params.GrassGrowChance) {
			l.Set(0, 0, Grass(s.GrowTicks()+1, s.RemainingHeight()))
		}
	case KindGrass:
		if above.RemainingHeight() < s.RemainingHeight() {
			l.Set(0, 0, Grass(s.GrowTicks(), s.RemainingHeight()-1))
		}
	case KindFire:
		// Burning overhead: hold, neither grow nor wilt.
	default:
		l.Set(0, 0, Dirt(false, 0))
	}
}

func updateFire(l *Local, s Substance) {
	dx, dy := l.Neighbor()
	switch l.Get(dx, dy).Substance.Kind() {
	case KindGrass:
		if l.Chance(l.params.IgniteChance) {
			l.Set(dx, dy, Fire(uint8(l.params.IgniteFuel)))
		}
	case KindVoid:
		if l.Chance(l.params.SmokeSpawnChance) {
			l.Set(dx, dy, Smoke(l.smokeLifetime()))
		}
	}

	if !l.Chance(l.params.BurnChance) {
		return
	}
	if s.Fuel() == 0 {
		l.Set(0, 0, Smoke(l.smokeLifetime()))
		return
	}
	l.Set(0, 0, Fire(s.Fuel()-1))
}

func updateSmoke(l *Local, s Substance) {
	if s.Lifetime() == 0 {
		l.Set(0, 0, Void())
		return
	}
	l.Set(0, 0, Smoke(s.Lifetime()-1))

	dx := l.Offset()
	if l.Get(dx, -1).Substance.Kind() == KindVoid {
		l.Swap(dx, -1)
		return
	}
	dx = l.Offset()
	if l.Get(dx, 0).Substance.Kind() == KindVoid {
		l.Swap(dx, 0)
	}
}
