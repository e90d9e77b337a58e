// Package gui draws the board with tcell and builds the tview screens.
package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/remote"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

// Control is a key that drives the session rather than the piece
type Control int

const (
	ControlNone Control = iota
	ControlPause
	ControlRestart
	ControlQuit
)

type Keybinding struct {
	k tcell.Key
	r rune

	a tetris.Action
}

var keybindings = []*Keybinding{
	{r: 'a', a: tetris.ActionMoveLeft},
	{r: 'A', a: tetris.ActionMoveLeft},
	{r: 'h', a: tetris.ActionMoveLeft},
	{k: tcell.KeyLeft, a: tetris.ActionMoveLeft},
	{r: 'd', a: tetris.ActionMoveRight},
	{r: 'D', a: tetris.ActionMoveRight},
	{r: 'l', a: tetris.ActionMoveRight},
	{k: tcell.KeyRight, a: tetris.ActionMoveRight},
	{r: 's', a: tetris.ActionSoftDrop},
	{r: 'S', a: tetris.ActionSoftDrop},
	{r: 'j', a: tetris.ActionSoftDrop},
	{k: tcell.KeyDown, a: tetris.ActionSoftDrop},
	{r: 'r', a: tetris.ActionRotate},
	{r: 'R', a: tetris.ActionRotate},
	{r: 'w', a: tetris.ActionRotate},
	{r: 'W', a: tetris.ActionRotate},
	{r: 'k', a: tetris.ActionRotate},
	{k: tcell.KeyUp, a: tetris.ActionRotate},
}

var controls = map[rune]Control{
	'p': ControlPause,
	'P': ControlPause,
	'n': ControlRestart,
	'N': ControlRestart,
	'q': ControlQuit,
	'Q': ControlQuit,
}

// ActionFor maps a key event to a piece action
func ActionFor(ev *tcell.EventKey) (tetris.Action, bool) {
	k := ev.Key()
	r := ev.Rune()
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k != k {
			continue
		}
		if bind.r != 0 && (k != tcell.KeyRune || bind.r != r) {
			continue
		}
		return bind.a, true
	}
	return 0, false
}

// ControlFor maps a key event to a session control
func ControlFor(ev *tcell.EventKey) Control {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ControlQuit
	case tcell.KeyRune:
		return controls[ev.Rune()]
	}
	return ControlNone
}

const (
	PageLogin    = "login"
	PageRegister = "register"
	PageAlert    = "alert"

	MsgRegistered       = "User registered successfully"
	MsgUserExists       = "Username already exists"
	MsgPasswordMismatch = "Passwords do not match"
	MsgEmptyCredentials = "Username and password are required"

	fieldUsername = "Username"
	fieldPassword = "Password"
	fieldConfirm  = "Confirm password"
	fieldWidth    = 24
)

// AuthMessage is the text shown to the user for the outcome of a request
func AuthMessage(username string, err error) string {
	switch {
	case errors.Is(err, remote.ErrUserNotFound):
		return fmt.Sprintf("User %q not found or password is incorrect", username)
	case errors.Is(err, remote.ErrUserExists):
		return MsgUserExists
	case errors.Is(err, remote.ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, remote.ErrEmptyCredentials):
		return MsgEmptyCredentials
	case err != nil:
		return fmt.Sprintf("Error: %v", err)
	default:
		return ""
	}
}

// AuthView holds the login and register forms. Submissions that pass local
// checks are handed to OnLogin and OnRegister.
type AuthView struct {
	*tview.Pages
	Login      *tview.Form
	Register   *tview.Form
	OnLogin    func(remote.Credentials)
	OnRegister func(remote.Credentials)
	alert      string
}

func textOf(f *tview.Form, label string) string {
	if field, ok := f.GetFormItemByLabel(label).(*tview.InputField); ok {
		return field.GetText()
	}
	return ""
}

func setText(f *tview.Form, label, text string) {
	if field, ok := f.GetFormItemByLabel(label).(*tview.InputField); ok {
		field.SetText(text)
	}
}

// center wraps p in a flex box of the given size
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// NewAuthView builds both forms. username prefills login, suggested prefills register.
func NewAuthView(username, suggested string) *AuthView {
	av := &AuthView{Pages: tview.NewPages()}

	av.Login = tview.NewForm().
		AddInputField(fieldUsername, username, fieldWidth, nil, nil).
		AddPasswordField(fieldPassword, "", fieldWidth, '*', nil)
	av.Login.AddButton("Login", av.submitLogin).
		AddButton("Register", func() { av.Show(PageRegister) })
	av.Login.SetBorder(true).SetTitle(" tetristerm · login ")

	av.Register = tview.NewForm().
		AddInputField(fieldUsername, suggested, fieldWidth, nil, nil).
		AddPasswordField(fieldPassword, "", fieldWidth, '*', nil).
		AddPasswordField(fieldConfirm, "", fieldWidth, '*', nil)
	av.Register.AddButton("Register", av.submitRegister).
		AddButton("Back", func() { av.Show(PageLogin) })
	av.Register.SetBorder(true).SetTitle(" tetristerm · register ")

	av.AddPage(PageLogin, center(av.Login, 46, 9), true, true)
	av.AddPage(PageRegister, center(av.Register, 46, 11), true, false)
	return av
}

// Show switches to the login or register page
func (av *AuthView) Show(page string) {
	av.SwitchToPage(page)
}

// LoginCredentials reads the login form
func (av *AuthView) LoginCredentials() remote.Credentials {
	return remote.Credentials{
		Username: textOf(av.Login, fieldUsername),
		Password: textOf(av.Login, fieldPassword),
	}
}

func (av *AuthView) submitLogin() {
	creds := av.LoginCredentials()
	if err := creds.Validate(); err != nil {
		av.Alert(AuthMessage(creds.Username, err))
		return
	}
	if av.OnLogin != nil {
		av.OnLogin(creds)
	}
}

func (av *AuthView) submitRegister() {
	creds := remote.Credentials{
		Username: textOf(av.Register, fieldUsername),
		Password: textOf(av.Register, fieldPassword),
	}
	err := creds.Validate()
	if err == nil {
		err = creds.Confirm(textOf(av.Register, fieldConfirm))
	}
	if err != nil {
		av.Alert(AuthMessage(creds.Username, err))
		return
	}
	if av.OnRegister != nil {
		av.OnRegister(creds)
	}
}

// Registered moves a newly registered user to the login page
func (av *AuthView) Registered(username string) {
	setText(av.Login, fieldUsername, username)
	setText(av.Login, fieldPassword, "")
	setText(av.Register, fieldPassword, "")
	setText(av.Register, fieldConfirm, "")
	av.Show(PageLogin)
	av.Alert(MsgRegistered)
}

// Alert shows a modal with a single OK button over the current page
func (av *AuthView) Alert(msg string) {
	av.alert = msg
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			av.alert = ""
			av.RemovePage(PageAlert)
		})
	av.AddPage(PageAlert, modal, true, true)
}

// AlertText returns the message of the visible alert, if any
func (av *AuthView) AlertText() string {
	return av.alert
}
