package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/qnkhuat/tetristerm/pkg/auth"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeysIgnoredBeforeLogin(t *testing.T) {
	cl := NewClient(Config{Server: "http://localhost:1", Seed: 1})
	defer cl.Stop()

	ev := runeKey('a')
	assert.Equal(t, ev, cl.handleKey(ev))
	assert.False(t, cl.Router.Pressed(tetris.ActionMoveLeft))
}

func TestKeysRouteToGame(t *testing.T) {
	cl := NewClient(Config{Offline: true, Seed: 1})
	defer cl.Stop()
	cl.startGame()
	name, _ := cl.Pages.GetFrontPage()
	assert.Equal(t, PageBoard, name)

	assert.Nil(t, cl.handleKey(runeKey('a')))
	assert.True(t, cl.Router.Pressed(tetris.ActionMoveLeft))
	assert.Nil(t, cl.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.True(t, cl.Router.Pressed(tetris.ActionRotate))

	assert.Nil(t, cl.handleKey(runeKey('p')))
	ev := runeKey('x')
	assert.Equal(t, ev, cl.handleKey(ev))
}

func TestOfflineClientHasNoRemote(t *testing.T) {
	cl := NewClient(Config{Offline: true, Username: "dana"})
	defer cl.Stop()
	assert.Nil(t, cl.Remote)
	assert.Equal(t, "dana", cl.Player.String())
	// Does not panic or block
	cl.submitScore(100)
}

func TestSubmitScore(t *testing.T) {
	store := auth.NewMemoryStore(bcrypt.MinCost)
	srv := httptest.NewServer(auth.NewHandler(store))
	defer srv.Close()

	cl := NewClient(Config{Server: srv.URL})
	defer cl.Stop()
	cl.Player.Login("erin")
	cl.submitScore(1300)

	scores := store.Scores()
	require.Len(t, scores, 1)
	assert.Equal(t, "erin", scores[0].Username)
	assert.Equal(t, 1300, scores[0].Score)
}

func TestPlayer(t *testing.T) {
	p := NewPlayer("")
	assert.Equal(t, "guest", p.String())
	assert.False(t, p.LoggedIn)
	p.Login("frank")
	assert.True(t, p.LoggedIn)
	assert.Equal(t, "frank", p.String())
	assert.NotEmpty(t, SuggestName())
}
