// Package auth is an in-memory account and score service for tetristerm clients.
package auth

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists   = errors.New("auth: username already exists")
	ErrUserNotFound = errors.New("auth: user not found or password is incorrect")
)

// Store keeps accounts and submitted scores
type Store interface {
	AddUser(username, password string) error
	Authenticate(username, password string) error
	AddScore(username string, score int) error
}

type user struct {
	Id       int
	Username string
	Hash     []byte
}

// Score is one finished game
type Score struct {
	UserId    int
	Username  string
	Score     int
	Timestamp time.Time
}

// MemoryStore lives as long as the process
type MemoryStore struct {
	mu     sync.Mutex
	users  map[string]*user
	scores []Score
	cost   int
	nextId int
}

func NewMemoryStore(cost int) *MemoryStore {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &MemoryStore{
		users:  make(map[string]*user),
		cost:   cost,
		nextId: 1,
	}
}

func (s *MemoryStore) AddUser(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return ErrUserExists
	}
	s.users[username] = &user{Id: s.nextId, Username: username, Hash: hash}
	s.nextId++
	return nil
}

func (s *MemoryStore) Authenticate(username, password string) error {
	s.mu.Lock()
	u, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword(u.Hash, []byte(password)); err != nil {
		return ErrUserNotFound
	}
	return nil
}

// AddScore records a score. Unknown or empty usernames are kept with id 0.
func (s *MemoryStore) AddScore(username string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := 0
	if u, ok := s.users[username]; ok {
		id = u.Id
	}
	s.scores = append(s.scores, Score{
		UserId:    id,
		Username:  username,
		Score:     score,
		Timestamp: time.Now(),
	})
	return nil
}

// Scores returns a copy of every recorded score in submission order
func (s *MemoryStore) Scores() []Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Score(nil), s.scores...)
}
