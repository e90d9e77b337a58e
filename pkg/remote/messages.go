package remote

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
)

type MessageType int

const (
	TypeMessageLogin MessageType = iota
	TypeMessageRegister
	TypeMessageScore
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageLogin:
		return "TypeMessageLogin"
	case TypeMessageRegister:
		return "TypeMessageRegister"
	case TypeMessageScore:
		return "TypeMessageScore"
	default:
		return "Unknown MessageType"
	}
}

// Path is the endpoint a message is posted to
func (m MessageType) Path() string {
	switch m {
	case TypeMessageLogin:
		return "/login"
	case TypeMessageRegister:
		return "/register"
	case TypeMessageScore:
		return "/score"
	default:
		return "/"
	}
}

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

var (
	ErrEmptyCredentials = errors.New("remote: username and password are required")
	ErrPasswordMismatch = errors.New("remote: passwords do not match")
)

// Credentials is the body of both login and register requests
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the pair before anything is sent
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrEmptyCredentials
	}
	return nil
}

// Confirm checks a registration's repeated password
func (c Credentials) Confirm(confirm string) error {
	if confirm != c.Password {
		return ErrPasswordMismatch
	}
	return nil
}

//
type MessageLogin struct {
	Credentials
}

func (m MessageLogin) Type() MessageType {
	return TypeMessageLogin
}

func (m MessageLogin) Encode() json.RawMessage {
	return encode(m)
}

//
type MessageRegister struct {
	Credentials
}

func (m MessageRegister) Type() MessageType {
	return TypeMessageRegister
}

func (m MessageRegister) Encode() json.RawMessage {
	return encode(m)
}

// MessageScore is sent once when a game ends
type MessageScore struct {
	Username string `json:"username,omitempty"`
	Score    int    `json:"score"`
}

func (m MessageScore) Type() MessageType {
	return TypeMessageScore
}

func (m MessageScore) Encode() json.RawMessage {
	return encode(m)
}

func encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}
