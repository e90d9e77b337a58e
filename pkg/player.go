package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

// Player is the person at this terminal. Only the logged in flag
// survives for the life of the process.
type Player struct {
	Name     string
	LoggedIn bool
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// SuggestName proposes a username for the register form
func SuggestName() string {
	return petname.Generate(2, "-")
}

func (p *Player) Login(name string) {
	p.Name = name
	p.LoggedIn = true
}

func (p *Player) String() string {
	if p.Name == "" {
		return "guest"
	}
	return p.Name
}
