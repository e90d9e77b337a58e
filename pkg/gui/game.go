package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

// GameState encapsulates everything needed to draw a frame
type GameState struct {
	S        tcell.Screen    // Screen
	Snapshot tetris.Snapshot // Game state at the end of the last frame
	Theme    Theme           // Theme
	Player   string          // Shown above the score
}

// BoardView is a tview primitive showing the latest snapshot.
// Update and drawing both happen on the application goroutine.
type BoardView struct {
	*tview.Box
	state GameState
}

func NewBoardView(theme Theme, player string) *BoardView {
	bv := &BoardView{
		Box: tview.NewBox(),
		state: GameState{
			Theme:    theme,
			Player:   player,
			Snapshot: tetris.Snapshot{Grid: tetris.NewGrid()},
		},
	}
	bv.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		bv.state.S = screen
		ox := x + (width-(BoardWidth+panelGap+16))/2
		if ox < x {
			ox = x
		}
		Draw(screen, ox, y, &bv.state)
		return x, y, width, height
	})
	return bv
}

func (bv *BoardView) Update(snap tetris.Snapshot) {
	bv.state.Snapshot = snap
}

func (bv *BoardView) SetPlayer(name string) {
	bv.state.Player = name
}

func (bv *BoardView) State() GameState {
	return bv.state
}
