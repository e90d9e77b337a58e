package tetris

import (
	"log"
)

// LinePoints is the score awarded for clearing n rows with one lock
func LinePoints(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}

// Game owns the whole play state. It is not safe for concurrent use;
// a single goroutine drives it and hands out Snapshots.
type Game struct {
	Grid     *Grid // Locked blocks
	Current  Piece // Falling piece
	Score    int   // Points in this session
	Lines    int   // Rows cleared in this session
	GameOver bool  // Terminal until Restart
	Paused   bool  // Gameplay suspended
	spawner  *Spawner
}

func NewGame(sp *Spawner) *Game {
	g := &Game{
		Grid:    NewGrid(),
		spawner: sp,
	}
	g.Current = sp.CreatePiece()
	return g
}

// Playing reports whether moves are currently accepted
func (g *Game) Playing() bool {
	return !g.GameOver && !g.Paused
}

func (g *Game) translate(dx, dy int) bool {
	if !g.Playing() {
		return false
	}
	p, ok := g.Current.Translate(g.Grid, dx, dy)
	g.Current = p
	return ok
}

func (g *Game) MoveLeft() bool {
	return g.translate(-1, 0)
}

func (g *Game) MoveRight() bool {
	return g.translate(1, 0)
}

func (g *Game) Rotate() bool {
	if !g.Playing() {
		return false
	}
	p, ok := g.Current.Rotate(g.Grid)
	g.Current = p
	return ok
}

// Gravity moves the piece one row down. When the piece cannot move it is
// locked and false is returned.
func (g *Game) Gravity() bool {
	if !g.Playing() {
		return false
	}
	if g.translate(0, 1) {
		return true
	}
	g.lock()
	return false
}

// SoftDrop is Gravity that awards one point per row descended
func (g *Game) SoftDrop() bool {
	moved := g.Gravity()
	if moved {
		g.Score++
	}
	return moved
}

// Apply dispatches a single action
func (g *Game) Apply(a Action) bool {
	switch a {
	case ActionMoveLeft:
		return g.MoveLeft()
	case ActionMoveRight:
		return g.MoveRight()
	case ActionSoftDrop:
		return g.SoftDrop()
	case ActionRotate:
		return g.Rotate()
	default:
		return false
	}
}

func (g *Game) lock() {
	g.Grid.LockCells(g.Current.Cells())
	cleared := g.Grid.ClearFullRows()
	g.Score += LinePoints(cleared)
	g.Lines += cleared

	g.Current = g.spawner.CreatePiece()
	if !g.Current.Valid(g.Grid) {
		g.GameOver = true
		log.Printf("Game over: score=%d lines=%d", g.Score, g.Lines)
	}
}

// Restart begins a new session on an empty grid
func (g *Game) Restart() {
	g.Grid.Reset()
	g.Score = 0
	g.Lines = 0
	g.GameOver = false
	g.Paused = false
	g.Current = g.spawner.CreatePiece()
}

func (g *Game) TogglePause() {
	g.Paused = !g.Paused
}

// ShadowY is the row where the current piece would come to rest
func (g *Game) ShadowY() int {
	return g.Current.ShadowY(g.Grid)
}

// Snapshot is an immutable copy of the game used for rendering
type Snapshot struct {
	Grid     *Grid
	Current  Piece
	ShadowY  int
	Score    int
	Lines    int
	GameOver bool
	Paused   bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:     g.Grid.Copy(),
		Current:  g.Current.Copy(),
		ShadowY:  g.ShadowY(),
		Score:    g.Score,
		Lines:    g.Lines,
		GameOver: g.GameOver,
		Paused:   g.Paused,
	}
}
