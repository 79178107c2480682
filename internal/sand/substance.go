package sand

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind enumerates the substance variants.
type Kind uint8

const (
	KindVoid Kind = iota
	KindOutOfBounds
	KindSand
	KindRock
	KindWater
	KindDirt
	KindMud
	KindGrass
	KindFire
	KindSmoke

	kindCount
)

var kindNames = [kindCount]string{
	KindVoid:        "void",
	KindOutOfBounds: "out-of-bounds",
	KindSand:        "sand",
	KindRock:        "rock",
	KindWater:       "water",
	KindDirt:        "dirt",
	KindMud:         "mud",
	KindGrass:       "grass",
	KindFire:        "fire",
	KindSmoke:       "smoke",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Substance is a cell's material plus the counters its rule needs. Only the
// fields owned by the variant are ever set, so two substances compare equal
// exactly when they are the same variant with the same counters.
//
//	Sand:  falling
//	Dirt:  falling, a=exposure
//	Mud:   falling, a=exposure
//	Grass: a=growTicks, b=remainingHeight
//	Fire:  a=fuel
//	Smoke: a=lifetime
type Substance struct {
	kind    Kind
	falling bool
	a, b    uint8
}

func Void() Substance        { return Substance{kind: KindVoid} }
func OutOfBounds() Substance { return Substance{kind: KindOutOfBounds} }
func Rock() Substance        { return Substance{kind: KindRock} }
func Water() Substance       { return Substance{kind: KindWater} }

func Sand(falling bool) Substance {
	return Substance{kind: KindSand, falling: falling}
}

func Dirt(falling bool, exposure uint8) Substance {
	return Substance{kind: KindDirt, falling: falling, a: exposure}
}

func Mud(falling bool, exposure uint8) Substance {
	return Substance{kind: KindMud, falling: falling, a: exposure}
}

func Grass(growTicks, remainingHeight uint8) Substance {
	return Substance{kind: KindGrass, a: growTicks, b: remainingHeight}
}

func Fire(fuel uint8) Substance {
	return Substance{kind: KindFire, a: fuel}
}

func Smoke(lifetime uint8) Substance {
	return Substance{kind: KindSmoke, a: lifetime}
}

// Kind returns the variant tag.
func (s Substance) Kind() Kind { return s.kind }

// Falling reports the falling flag of Sand, Dirt and Mud.
func (s Substance) Falling() bool { return s.falling }

// Exposure returns the open-air counter of Dirt and Mud.
func (s Substance) Exposure() uint8 { return s.counter(KindDirt, KindMud) }

// GrowTicks returns Grass's growth timer.
func (s Substance) GrowTicks() uint8 { return s.counter(KindGrass) }

// RemainingHeight returns how many more cells a Grass stalk may grow.
func (s Substance) RemainingHeight() uint8 {
	if s.kind != KindGrass {
		return 0
	}
	return s.b
}

// Fuel returns Fire's remaining fuel.
func (s Substance) Fuel() uint8 { return s.counter(KindFire) }

// Lifetime returns Smoke's remaining lifetime.
func (s Substance) Lifetime() uint8 { return s.counter(KindSmoke) }

func (s Substance) counter(kinds ...Kind) uint8 {
	for _, k := range kinds {
		if s.kind == k {
			return s.a
		}
	}
	return 0
}

// Is reports whether s is any of the given kinds.
func (s Substance) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if s.kind == k {
			return true
		}
	}
	return false
}

// String returns a debug label including the variant's counters.
func (s Substance) String() string {
	switch s.kind {
	case KindSand:
		return fmt.Sprintf("sand(falling=%t)", s.falling)
	case KindDirt, KindMud:
		return fmt.Sprintf("%s(falling=%t, exposure=%d)", s.kind, s.falling, s.a)
	case KindGrass:
		return fmt.Sprintf("grass(grow=%d, remaining=%d)", s.a, s.b)
	case KindFire:
		return fmt.Sprintf("fire(fuel=%d)", s.a)
	case KindSmoke:
		return fmt.Sprintf("smoke(lifetime=%d)", s.a)
	default:
		return s.kind.String()
	}
}

// Color returns the kind's default palette color.
func (k Kind) Color() color.RGBA {
	if k < kindCount {
		return kindColors[k]
	}
	return kindColors[KindVoid]
}

// Color returns the default palette color of the substance's kind.
func (s Substance) Color() color.RGBA { return s.kind.Color() }

var kindColors = [kindCount]color.RGBA{
	KindVoid:        {R: 0, G: 0, B: 0, A: 255},
	KindOutOfBounds: {R: 255, G: 0, B: 255, A: 255},
	KindSand:        {R: 214, G: 186, B: 128, A: 255},
	KindRock:        {R: 128, G: 128, B: 128, A: 255},
	KindWater:       {R: 40, G: 90, B: 220, A: 255},
	KindDirt:        {R: 110, G: 78, B: 48, A: 255},
	KindMud:         {R: 74, G: 52, B: 36, A: 255},
	KindGrass:       {R: 70, G: 160, B: 80, A: 255},
	KindFire:        {R: 255, G: 110, B: 30, A: 255},
	KindSmoke:       {R: 150, G: 150, B: 160, A: 255},
}

const (
	defaultFireFuel      = 10
	defaultSmokeLifetime = 150
	defaultGrassHeight   = 5
)

// Default returns a fresh default-parameter instance of kind, as used when
// painting. OutOfBounds never lives in the grid, so it maps to Void.
func Default(kind Kind) Substance {
	switch kind {
	case KindSand:
		return Sand(false)
	case KindRock:
		return Rock()
	case KindWater:
		return Water()
	case KindDirt:
		return Dirt(false, 0)
	case KindMud:
		return Mud(false, 0)
	case KindGrass:
		return Grass(0, defaultGrassHeight)
	case KindFire:
		return Fire(defaultFireFuel)
	case KindSmoke:
		return Smoke(defaultSmokeLifetime)
	default:
		return Void()
	}
}

// Kinds lists the paintable kinds in brush order.
func Kinds() []Kind {
	return []Kind{KindSand, KindWater, KindRock, KindDirt, KindMud, KindGrass, KindFire, KindSmoke, KindVoid}
}

// ParseKind resolves a kind from its name, case-insensitively.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Kind(0); k < kindCount; k++ {
		if k == KindOutOfBounds {
			continue
		}
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindVoid, false
}
