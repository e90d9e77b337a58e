package pkg

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/input"
	"github.com/qnkhuat/tetristerm/pkg/remote"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

const (
	PageAuth  = "auth"
	PageBoard = "board"
)

type Client struct {
	App      *tview.Application
	Pages    *tview.Pages
	Auth     *gui.AuthView
	Board    *gui.BoardView
	Layout   *tview.Grid
	Clock    *Clock
	Router   *input.Router
	Remote   *remote.Client // nil when offline
	Player   *Player
	pauseBtn *tview.Button
	ctx      context.Context
	cancel   context.CancelFunc
	start    sync.Once
	playing  int32
	drawing  int32
	mu       sync.Mutex
	latest   tetris.Snapshot
}

func NewClient(cfg Config) *Client {
	app := tview.NewApplication()
	ctx, cancel := context.WithCancel(context.Background())

	cl := &Client{
		App:    app,
		Pages:  tview.NewPages(),
		Router: input.NewRouter(input.DefaultHoldTimeout),
		Player: NewPlayer(cfg.Username),
		ctx:    ctx,
		cancel: cancel,
	}
	if !cfg.Offline {
		cl.Remote = remote.NewClient(cfg.Server)
		log.Printf("Account service: %s", cl.Remote.BaseURL())
	}

	game := tetris.NewGame(tetris.NewRandomSpawner(cfg.seed()))
	cl.Clock = NewClock(game, cl.Router)
	cl.Clock.OnFrame = cl.onFrame
	cl.Clock.OnGameOver = func(score int) {
		go cl.submitScore(score)
	}

	theme := cfg.Theme()
	cl.Board = gui.NewBoardView(theme, cl.Player.String())
	cl.Board.Update(game.Snapshot())

	// Game options
	cl.pauseBtn = tview.NewButton(string(ActionPause)).SetSelectedFunc(func() {
		cl.Clock.Send(CommandTogglePause)
	})
	restartBtn := tview.NewButton(ActionRestart).SetSelectedFunc(func() {
		cl.Clock.Send(CommandRestart)
	})
	quitBtn := tview.NewButton(ActionQuit).SetSelectedFunc(cl.Stop)

	gameOptions := tview.NewGrid().
		SetColumns(10, 10, 10).
		SetRows(1).
		SetGap(0, 1).
		AddItem(cl.pauseBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(restartBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(quitBtn, 0, 2, 1, 1, 0, 0, false)

	cl.Layout = tview.NewGrid().
		SetRows(gui.BoardHeight+1, 1, -1).
		SetColumns(-1).
		AddItem(cl.Board, 0, 0, 1, 1, 0, 0, true).
		AddItem(gameOptions, 1, 0, 1, 1, 0, 0, false)

	cl.Auth = gui.NewAuthView(cfg.Username, SuggestName())
	cl.Auth.OnLogin = cl.login
	cl.Auth.OnRegister = cl.register

	cl.Pages.AddPage(PageAuth, cl.Auth, true, true)
	cl.Pages.AddPage(PageBoard, cl.Layout, true, false)

	app.SetInputCapture(cl.handleKey)
	return cl
}

// Run blocks until the application quits
func (cl *Client) Run() error {
	if cl.Remote == nil {
		cl.startGame()
	}
	return cl.App.SetRoot(cl.Pages, true).EnableMouse(true).Run()
}

func (cl *Client) Stop() {
	cl.cancel()
	cl.App.Stop()
}

func (cl *Client) isPlaying() bool {
	return atomic.LoadInt32(&cl.playing) == 1
}

// handleKey routes keys to the game while the board is shown
func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if !cl.isPlaying() {
		return ev
	}
	switch gui.ControlFor(ev) {
	case gui.ControlPause:
		cl.Clock.Send(CommandTogglePause)
		return nil
	case gui.ControlRestart:
		cl.Clock.Send(CommandRestart)
		return nil
	case gui.ControlQuit:
		cl.Stop()
		return nil
	}
	if a, ok := gui.ActionFor(ev); ok {
		cl.Router.Press(a, time.Now())
		return nil
	}
	return ev
}

func (cl *Client) login(creds remote.Credentials) {
	go func() {
		ctx, cancel := context.WithTimeout(cl.ctx, remote.DefaultTimeout)
		defer cancel()
		err := cl.Remote.Login(ctx, creds)
		if err != nil {
			log.Printf("Login failed: %v", err)
		}
		cl.App.QueueUpdateDraw(func() {
			if err != nil {
				cl.Auth.Alert(gui.AuthMessage(creds.Username, err))
				return
			}
			cl.Player.Login(creds.Username)
			cl.startGame()
		})
	}()
}

func (cl *Client) register(creds remote.Credentials) {
	go func() {
		ctx, cancel := context.WithTimeout(cl.ctx, remote.DefaultTimeout)
		defer cancel()
		err := cl.Remote.Register(ctx, creds)
		if err != nil {
			log.Printf("Register failed: %v", err)
		}
		cl.App.QueueUpdateDraw(func() {
			if err != nil {
				cl.Auth.Alert(gui.AuthMessage(creds.Username, err))
				return
			}
			cl.Auth.Registered(creds.Username)
		})
	}()
}

// startGame shows the board and starts the clock. Later calls do nothing.
func (cl *Client) startGame() {
	cl.start.Do(func() {
		log.Printf("Starting game for %s", cl.Player)
		cl.Board.SetPlayer(cl.Player.String())
		cl.Pages.SwitchToPage(PageBoard)
		cl.App.SetFocus(cl.Board)
		atomic.StoreInt32(&cl.playing, 1)
		go cl.Clock.Run(cl.ctx)
	})
}

// onFrame runs on the clock goroutine. At most one draw is queued at a time.
func (cl *Client) onFrame(snap tetris.Snapshot) {
	cl.mu.Lock()
	cl.latest = snap
	cl.mu.Unlock()
	if !atomic.CompareAndSwapInt32(&cl.drawing, 0, 1) {
		return
	}
	cl.App.QueueUpdateDraw(func() {
		atomic.StoreInt32(&cl.drawing, 0)
		cl.mu.Lock()
		snap := cl.latest
		cl.mu.Unlock()
		cl.Board.Update(snap)
		if snap.Paused {
			cl.pauseBtn.SetLabel(ActionResume)
		} else {
			cl.pauseBtn.SetLabel(string(ActionPause))
		}
	})
}

// submitScore reports a finished game. Failures are only logged.
func (cl *Client) submitScore(score int) {
	if cl.Remote == nil {
		log.Printf("Offline, score %d not submitted", score)
		return
	}
	ctx, cancel := context.WithTimeout(cl.ctx, remote.DefaultTimeout)
	defer cancel()
	err := cl.Remote.SubmitScore(ctx, remote.MessageScore{Username: cl.Player.Name, Score: score})
	if err != nil {
		log.Printf("Failed to submit score %d: %v", score, err)
		return
	}
	log.Printf("Submitted score %d", score)
}
