package pkg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/input"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

var start = time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return start.Add(d)
}

func newTestClock() (*Clock, *[]tetris.Snapshot) {
	game := tetris.NewGame(tetris.NewSpawner(constSource(tetris.PieceO)))
	cl := NewClock(game, input.NewRouter(0))
	var frames []tetris.Snapshot
	cl.OnFrame = func(s tetris.Snapshot) {
		frames = append(frames, s)
	}
	return cl, &frames
}

func TestClockGravity(t *testing.T) {
	cl, frames := newTestClock()
	cl.Tick(at(0))
	cl.Tick(at(GravityInterval))
	assert.Equal(t, 0, cl.Game.Current.Y)

	cl.Tick(at(GravityInterval + time.Millisecond))
	assert.Equal(t, 1, cl.Game.Current.Y)
	assert.Len(t, *frames, 3)
	assert.Equal(t, 1, (*frames)[2].Current.Y)
}

func TestClockAppliesHeldKeys(t *testing.T) {
	cl, _ := newTestClock()
	cl.Router.Press(tetris.ActionMoveLeft, at(0))
	cl.Tick(at(FrameInterval))
	assert.Equal(t, 3, cl.Game.Current.X)
}

func TestClockPause(t *testing.T) {
	cl, frames := newTestClock()
	cl.Tick(at(0))
	cl.Send(CommandTogglePause)
	cl.Tick(at(time.Millisecond))
	require.True(t, cl.Game.Paused)

	cl.Router.Press(tetris.ActionMoveLeft, at(2*time.Millisecond))
	cl.Tick(at(5 * GravityInterval))
	assert.Equal(t, 0, cl.Game.Current.Y)
	assert.Equal(t, 4, cl.Game.Current.X)
	assert.True(t, (*frames)[2].Paused)

	// Resuming restarts the gravity interval
	cl.Send(CommandTogglePause)
	cl.Tick(at(5*GravityInterval + time.Millisecond))
	assert.False(t, cl.Game.Paused)
	assert.Equal(t, 0, cl.Game.Current.Y)
	cl.Tick(at(6*GravityInterval + 2*time.Millisecond))
	assert.Equal(t, 1, cl.Game.Current.Y)
}

func TestClockReportsGameOverOnce(t *testing.T) {
	cl, frames := newTestClock()
	var reports []int
	cl.OnGameOver = func(score int) {
		reports = append(reports, score)
	}

	cl.Game.Score = 700
	cl.Game.GameOver = true
	cl.Tick(at(0))
	cl.Tick(at(FrameInterval))
	cl.Tick(at(10 * GravityInterval))
	assert.Equal(t, []int{700}, reports)
	assert.Len(t, *frames, 3)
	assert.True(t, (*frames)[2].GameOver)

	// Pausing a finished game does nothing
	cl.Send(CommandTogglePause)
	cl.Tick(at(11 * GravityInterval))
	assert.False(t, cl.Game.Paused)

	cl.Send(CommandRestart)
	cl.Tick(at(12 * GravityInterval))
	assert.False(t, cl.Game.GameOver)
	assert.Equal(t, 0, cl.Game.Score)

	cl.Game.Score = 100
	cl.Game.GameOver = true
	cl.Tick(at(13 * GravityInterval))
	assert.Equal(t, []int{700, 100}, reports)
}

func TestClockRunStopsWithContext(t *testing.T) {
	cl, _ := newTestClock()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cl.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("failed to stop clock")
	}
}
