package pkg

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/input"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

const (
	FrameInterval    = time.Second / 60
	GravityInterval  = 1000 * time.Millisecond
	CommandQueueSize = 10
)

// Command is a request from the UI that the loop applies at the next frame
type Command int

const (
	CommandRestart Command = iota
	CommandTogglePause
)

func (c Command) String() string {
	switch c {
	case CommandRestart:
		return "Restart"
	case CommandTogglePause:
		return "TogglePause"
	default:
		return "Unknown"
	}
}

// Clock drives the game one frame at a time. Only the goroutine calling Tick
// or Run touches the Game.
type Clock struct {
	Game        *tetris.Game
	Router      *input.Router
	Gravity     time.Duration
	OnFrame     func(tetris.Snapshot) // Called at the end of every frame
	OnGameOver  func(score int)       // Called once per finished game
	commands    chan Command
	lastGravity time.Time
	reported    bool
}

func (cl *Clock) String() string {
	return fmt.Sprintf("score=%d lines=%d paused=%v over=%v",
		cl.Game.Score, cl.Game.Lines, cl.Game.Paused, cl.Game.GameOver)
}

func NewClock(game *tetris.Game, router *input.Router) *Clock {
	return &Clock{
		Game:     game,
		Router:   router,
		Gravity:  GravityInterval,
		commands: make(chan Command, CommandQueueSize),
	}
}

// Send queues a command. It never blocks; commands beyond the queue size are dropped.
func (cl *Clock) Send(cmd Command) {
	select {
	case cl.commands <- cmd:
	default:
		log.Printf("Dropped command: %s", cmd)
	}
}

func (cl *Clock) drain(now time.Time) {
	for {
		select {
		case cmd := <-cl.commands:
			cl.apply(cmd, now)
		default:
			return
		}
	}
}

func (cl *Clock) apply(cmd Command, now time.Time) {
	switch cmd {
	case CommandRestart:
		cl.Game.Restart()
		cl.Router.Reset()
		cl.reported = false
		cl.lastGravity = now
		log.Printf("Restarted")
	case CommandTogglePause:
		if cl.Game.GameOver {
			return
		}
		cl.Game.TogglePause()
		if !cl.Game.Paused {
			// Resume with a full gravity interval
			cl.lastGravity = now
		}
		cl.Router.Reset()
	}
}

// Tick runs a single frame
func (cl *Clock) Tick(now time.Time) {
	if cl.lastGravity.IsZero() {
		cl.lastGravity = now
	}
	cl.drain(now)

	switch {
	case cl.Game.Paused:
	case cl.Game.GameOver:
		if !cl.reported {
			cl.reported = true
			log.Printf("Reporting: %s", cl)
			if cl.OnGameOver != nil {
				cl.OnGameOver(cl.Game.Score)
			}
		}
	default:
		if now.Sub(cl.lastGravity) > cl.Gravity {
			cl.Game.Gravity()
			cl.lastGravity = now
		}
		for _, a := range cl.Router.Due(now) {
			cl.Game.Apply(a)
		}
	}

	if cl.OnFrame != nil {
		cl.OnFrame(cl.Game.Snapshot())
	}
}

// Run ticks every FrameInterval until ctx is done
func (cl *Clock) Run(ctx context.Context) {
	tick := time.NewTicker(FrameInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			cl.Tick(now)
		}
	}
}
