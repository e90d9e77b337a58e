package remote

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	path        string
	contentType string
	body        map[string]interface{}
}

// fakeService answers every request with the status set for its path
func fakeService(t *testing.T, status map[string]int) (*httptest.Server, *[]request) {
	var got []request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = append(got, request{r.URL.Path, r.Header.Get("Content-Type"), body})
		code, ok := status[r.URL.Path]
		if !ok {
			code = http.StatusOK
		}
		w.WriteHeader(code)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestLogin(t *testing.T) {
	srv, got := fakeService(t, map[string]int{"/login": http.StatusOK})
	c := NewClient(srv.URL + "/")
	assert.Equal(t, srv.URL, c.BaseURL())

	err := c.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "/login", (*got)[0].path)
	assert.Equal(t, "application/json", (*got)[0].contentType)
	assert.Equal(t, map[string]interface{}{"username": "alice", "password": "secret"}, (*got)[0].body)
}

func TestConnectionReused(t *testing.T) {
	var conns int32
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user not found or password is incorrect", http.StatusNotFound)
	}))
	srv.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			atomic.AddInt32(&conns, 1)
		}
	}
	srv.Start()
	defer srv.Close()

	c := NewClient(srv.URL)
	for i := 0; i < 3; i++ {
		err := c.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
		require.ErrorIs(t, err, ErrUserNotFound)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&conns))
}

func TestLoginNotFound(t *testing.T) {
	srv, _ := fakeService(t, map[string]int{"/login": http.StatusNotFound})
	c := NewClient(srv.URL)
	err := c.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginUnexpectedStatus(t *testing.T) {
	srv, _ := fakeService(t, map[string]int{"/login": http.StatusInternalServerError})
	c := NewClient(srv.URL)
	err := c.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
	var se StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StatusError(http.StatusInternalServerError), se)
	assert.Equal(t, "unexpected status: Internal Server Error", err.Error())
}

func TestRegister(t *testing.T) {
	srv, got := fakeService(t, map[string]int{"/register": http.StatusCreated})
	c := NewClient(srv.URL)
	require.NoError(t, c.Register(context.Background(), Credentials{Username: "bob", Password: "pw"}))
	assert.Equal(t, "/register", (*got)[0].path)
}

func TestRegisterAnyFailureMeansTaken(t *testing.T) {
	for _, code := range []int{http.StatusConflict, http.StatusInternalServerError, http.StatusBadRequest} {
		srv, _ := fakeService(t, map[string]int{"/register": code})
		c := NewClient(srv.URL)
		err := c.Register(context.Background(), Credentials{Username: "bob", Password: "pw"})
		assert.ErrorIs(t, err, ErrUserExists, http.StatusText(code))
	}
}

func TestEmptyCredentialsAreNotSent(t *testing.T) {
	srv, got := fakeService(t, map[string]int{})
	c := NewClient(srv.URL)
	assert.ErrorIs(t, c.Login(context.Background(), Credentials{Username: " ", Password: "pw"}), ErrEmptyCredentials)
	assert.ErrorIs(t, c.Register(context.Background(), Credentials{Username: "bob"}), ErrEmptyCredentials)
	assert.Empty(t, *got)
}

func TestConfirm(t *testing.T) {
	creds := Credentials{Username: "bob", Password: "pw"}
	assert.NoError(t, creds.Confirm("pw"))
	assert.ErrorIs(t, creds.Confirm("pW"), ErrPasswordMismatch)
	assert.ErrorIs(t, creds.Confirm(""), ErrPasswordMismatch)
}

func TestSubmitScore(t *testing.T) {
	srv, got := fakeService(t, map[string]int{"/score": http.StatusOK})
	c := NewClient(srv.URL)
	require.NoError(t, c.SubmitScore(context.Background(), MessageScore{Username: "bob", Score: 900}))
	assert.Equal(t, "/score", (*got)[0].path)
	assert.Equal(t, float64(900), (*got)[0].body["score"])
}

func TestSubmitScoreFailure(t *testing.T) {
	srv, _ := fakeService(t, map[string]int{"/score": http.StatusBadGateway})
	c := NewClient(srv.URL)
	err := c.SubmitScore(context.Background(), MessageScore{Score: 1})
	assert.Equal(t, StatusError(http.StatusBadGateway), err)
}

func TestUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url)
	err := c.Login(context.Background(), Credentials{Username: "bob", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestMessagePaths(t *testing.T) {
	assert.Equal(t, "/login", MessageLogin{}.Type().Path())
	assert.Equal(t, "/register", MessageRegister{}.Type().Path())
	assert.Equal(t, "/score", MessageScore{}.Type().Path())
}
