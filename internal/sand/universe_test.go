package sand

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicCause runs f and returns the cause of the error it panicked with.
func panicCause(f func()) (cause error) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				cause = errors.Cause(err)
			}
		}
	}()
	f()
	return nil
}

func TestNewUniverseIsVoid(t *testing.T) {
	u := NewUniverse(4, 3)
	require.Len(t, u.Cells(), 12)
	for _, c := range u.Cells() {
		assert.Equal(t, Void(), c.Substance)
		assert.False(t, c.Processed)
	}
	assert.Equal(t, 12, u.Census().Count(KindVoid))
	assert.Zero(t, u.Census().NonVoid())
}

func TestGetOutOfBoundsReturnsSentinel(t *testing.T) {
	u := NewUniverse(3, 2)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-5, -5}, {100, 100}}
	for _, c := range coords {
		cell := u.Get(c[0], c[1])
		assert.Equal(t, KindOutOfBounds, cell.Substance.Kind(), "Get(%d,%d)", c[0], c[1])
		assert.False(t, cell.Processed)
	}
	assert.Equal(t, KindVoid, u.Get(2, 1).Substance.Kind())
}

func TestAtRejectsOutOfRange(t *testing.T) {
	u := NewUniverse(3, 2)
	for _, c := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		x, y := c[0], c[1]
		cause := panicCause(func() { u.At(x, y) })
		assert.Equal(t, ErrOutOfBounds, cause, "At(%d,%d)", x, y)
	}
	assert.NotPanics(t, func() { u.At(2, 1) })
}

func TestSwapRejectsOutOfRange(t *testing.T) {
	u := NewUniverse(3, 3)
	u.At(1, 1).Substance = Sand(false)

	assert.Equal(t, ErrOutOfBounds, panicCause(func() { u.Swap(1, 1, 1, 3) }))
	assert.Equal(t, ErrOutOfBounds, panicCause(func() { u.Swap(-1, 0, 1, 1) }))
	// A rejected swap leaves both cells alone.
	assert.Equal(t, Sand(false), u.Get(1, 1).Substance)
}

func TestSwapExchangesWholeCells(t *testing.T) {
	u := NewUniverse(2, 2)
	a := u.At(0, 0)
	a.Substance = Fire(7)
	a.Color = KindFire.Color()
	a.Processed = true

	u.Swap(0, 0, 1, 1)

	moved := u.Get(1, 1)
	assert.Equal(t, Fire(7), moved.Substance)
	assert.Equal(t, KindFire.Color(), moved.Color)
	assert.True(t, moved.Processed)
	assert.Equal(t, voidCell, u.Get(0, 0))
	assert.Equal(t, 1, u.Census().NonVoid())
}
