// Package input turns held keys into a paced stream of game actions.
package input

import (
	"sync"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

const (
	// A key must be held this long before it fires again
	MoveDelay = 80 * time.Millisecond
	// Extra wait pushed onto a key after it fires
	MoveRepeatInterval = 60 * time.Millisecond
	// Terminals report no key release; a key not refreshed within this window is treated as released
	DefaultHoldTimeout = 150 * time.Millisecond
)

type keyState struct {
	pressed  bool
	lastMove time.Time // Moves fire when now - lastMove > MoveDelay
	lastSeen time.Time // Last press or auto-repeat from the terminal
}

// Router tracks which actions are held and when each may fire next.
// Press and Release are called from the UI goroutine, Due from the game loop.
type Router struct {
	mu          sync.Mutex
	keys        map[tetris.Action]*keyState
	HoldTimeout time.Duration // 0 disables the timeout
}

func NewRouter(holdTimeout time.Duration) *Router {
	r := &Router{
		keys:        make(map[tetris.Action]*keyState),
		HoldTimeout: holdTimeout,
	}
	for _, a := range tetris.Actions {
		r.keys[a] = &keyState{}
	}
	return r
}

// Press marks the action as held. A fresh press fires on the next Due.
func (r *Router) Press(a tetris.Action, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.keys[a]
	if !ok {
		return
	}
	k.lastSeen = now
	if k.pressed {
		return
	}
	k.pressed = true
	k.lastMove = now.Add(-MoveDelay)
}

func (r *Router) Release(a tetris.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k, ok := r.keys[a]; ok {
		k.pressed = false
	}
}

// Pressed reports whether the action is currently held
func (r *Router) Pressed(a tetris.Action) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.keys[a]
	return ok && k.pressed
}

// Due returns the actions that fire at now, in the fixed action order
func (r *Router) Due(now time.Time) []tetris.Action {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []tetris.Action
	for _, a := range tetris.Actions {
		k := r.keys[a]
		if !k.pressed {
			continue
		}
		if r.HoldTimeout > 0 && now.Sub(k.lastSeen) > r.HoldTimeout {
			k.pressed = false
			continue
		}
		if now.Sub(k.lastMove) > MoveDelay {
			due = append(due, a)
			k.lastMove = now.Add(MoveRepeatInterval)
		}
	}
	return due
}

// Reset releases every key
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range r.keys {
		k.pressed = false
	}
}
