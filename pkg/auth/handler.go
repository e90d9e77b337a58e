package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/qnkhuat/tetristerm/pkg/remote"
)

const (
	maxBodyBytes = 1 << 16
	// bcrypt ignores everything past this
	maxPasswordBytes = 72
)

var ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)

// Handler serves the account and score endpoints
type Handler struct {
	store Store
	mux   *http.ServeMux
}

func NewHandler(store Store) *Handler {
	h := &Handler{
		store: store,
		mux:   http.NewServeMux(),
	}
	h.mux.HandleFunc(remote.TypeMessageLogin.Path(), h.post(h.login))
	h.mux.HandleFunc(remote.TypeMessageRegister.Path(), h.post(h.register))
	h.mux.HandleFunc(remote.TypeMessageScore.Path(), h.post(h.score))
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// post rejects everything that is not a JSON POST
func (h *Handler) post(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			http.Error(w, "content type must be application/json", http.StatusBadRequest)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next(w, r)
	}
}

func decodeCredentials(r *http.Request) (remote.Credentials, error) {
	var creds remote.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return creds, err
	}
	if len(creds.Password) > maxPasswordBytes {
		return creds, ErrPasswordTooLong
	}
	return creds, creds.Validate()
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.store.Authenticate(creds.Username, creds.Password); err != nil {
		log.Printf("Login failed for %q: %v", creds.Username, err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("Login: %s", creds.Username)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = h.store.AddUser(creds.Username, creds.Password)
	switch {
	case errors.Is(err, ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Printf("Failed to register %q: %v", creds.Username, err)
		http.Error(w, "failed to register", http.StatusInternalServerError)
		return
	}
	log.Printf("Registered: %s", creds.Username)
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	var msg remote.MessageScore
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if msg.Score < 0 {
		http.Error(w, "score must not be negative", http.StatusBadRequest)
		return
	}
	if err := h.store.AddScore(msg.Username, msg.Score); err != nil {
		log.Printf("Failed to save score: %v", err)
		http.Error(w, "failed to save score", http.StatusInternalServerError)
		return
	}
	log.Printf("Score: %s %d", msg.Username, msg.Score)
	w.WriteHeader(http.StatusOK)
}
