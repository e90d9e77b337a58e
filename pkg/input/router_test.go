package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

var t0 = time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

func TestNothingHeld(t *testing.T) {
	r := NewRouter(0)
	assert.Empty(t, r.Due(ms(1000)))
}

func TestPressFiresOnNextFrame(t *testing.T) {
	r := NewRouter(0)
	r.Press(tetris.ActionMoveLeft, ms(0))
	assert.Equal(t, []tetris.Action{tetris.ActionMoveLeft}, r.Due(ms(16)))
	// Not again until MoveDelay has passed beyond the repeat interval
	assert.Empty(t, r.Due(ms(32)))
	assert.Empty(t, r.Due(ms(156)))
	assert.Equal(t, []tetris.Action{tetris.ActionMoveLeft}, r.Due(ms(157)))
}

func TestRepeatPressKeepsCadence(t *testing.T) {
	r := NewRouter(0)
	r.Press(tetris.ActionSoftDrop, ms(0))
	assert.Len(t, r.Due(ms(10)), 1)
	// Terminal auto-repeat must not reset the timer
	r.Press(tetris.ActionSoftDrop, ms(20))
	assert.Empty(t, r.Due(ms(30)))
}

func TestReleaseStopsFiring(t *testing.T) {
	r := NewRouter(0)
	r.Press(tetris.ActionRotate, ms(0))
	r.Release(tetris.ActionRotate)
	assert.False(t, r.Pressed(tetris.ActionRotate))
	assert.Empty(t, r.Due(ms(500)))
}

func TestFixedOrder(t *testing.T) {
	r := NewRouter(0)
	r.Press(tetris.ActionRotate, ms(0))
	r.Press(tetris.ActionSoftDrop, ms(0))
	r.Press(tetris.ActionMoveRight, ms(0))
	r.Press(tetris.ActionMoveLeft, ms(0))
	want := []tetris.Action{
		tetris.ActionMoveLeft,
		tetris.ActionMoveRight,
		tetris.ActionSoftDrop,
		tetris.ActionRotate,
	}
	assert.Equal(t, want, r.Due(ms(1)))
}

func TestIndependentCadence(t *testing.T) {
	r := NewRouter(0)
	r.Press(tetris.ActionMoveLeft, ms(0))
	assert.Len(t, r.Due(ms(1)), 1)

	r.Press(tetris.ActionMoveRight, ms(50))
	assert.Equal(t, []tetris.Action{tetris.ActionMoveRight}, r.Due(ms(51)))
	assert.Equal(t, []tetris.Action{tetris.ActionMoveLeft}, r.Due(ms(142)))
}

func TestHoldTimeout(t *testing.T) {
	r := NewRouter(100 * time.Millisecond)
	r.Press(tetris.ActionMoveRight, ms(0))
	assert.Len(t, r.Due(ms(1)), 1)
	assert.Empty(t, r.Due(ms(101)))
	assert.False(t, r.Pressed(tetris.ActionMoveRight))

	// A later press counts as a fresh one
	r.Press(tetris.ActionMoveRight, ms(300))
	assert.Len(t, r.Due(ms(301)), 1)
}

func TestReset(t *testing.T) {
	r := NewRouter(0)
	for _, a := range tetris.Actions {
		r.Press(a, ms(0))
	}
	r.Reset()
	for _, a := range tetris.Actions {
		assert.False(t, r.Pressed(a))
	}
	assert.Empty(t, r.Due(ms(1)))
}
