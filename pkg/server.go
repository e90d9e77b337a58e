package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"

	"github.com/qnkhuat/tetristerm/pkg/auth"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
	HttpPort          = ":1998"
)

type ServerConfig struct {
	SshAddr     string
	HttpAddr    string
	HostKeyFile string // Empty or missing generates a key per run
	Binary      string // Client executable spawned for each session
	LogDir      string // Where spawned clients write their logs
	BcryptCost  int
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		SshAddr:  SshPort,
		HttpAddr: HttpPort,
		Binary:   "tetristerm",
		LogDir:   os.TempDir(),
	}
}

// Server hosts the account service over HTTP and the game over SSH
type Server struct {
	*ssh.Server
	Http   *http.Server
	Store  *auth.MemoryStore
	config ServerConfig
}

func NewServer(cfg ServerConfig) (*Server, error) {
	store := auth.NewMemoryStore(cfg.BcryptCost)
	server := &Server{
		Http: &http.Server{
			Addr:    cfg.HttpAddr,
			Handler: auth.NewHandler(store),
		},
		Store:  store,
		config: cfg,
	}
	server.Server = &ssh.Server{
		Addr:        cfg.SshAddr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     server.sshHandle,
	}

	if cfg.HostKeyFile != "" {
		if _, err := os.Stat(cfg.HostKeyFile); err == nil {
			if err := server.SetOption(ssh.HostKeyFile(cfg.HostKeyFile)); err != nil {
				return nil, fmt.Errorf("host key: %w", err)
			}
		} else {
			log.Printf("Host key %s not found, using a generated key", cfg.HostKeyFile)
		}
	}
	return server, nil
}

// BackendURL is the account service address handed to spawned clients
func (s *Server) BackendURL() string {
	addr := s.config.HttpAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

// clientArgs are the flags for a client serving user
func (s *Server) clientArgs(user string) []string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, user)
	return []string{
		"--server", s.BackendURL(),
		"--user", user,
		"--log", filepath.Join(s.config.LogDir, fmt.Sprintf("tetristerm-%s.log", name)),
	}
}

func (s *Server) sshHandle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.config.Binary, s.clientArgs(sess.User())...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()
	log.Printf("Session started: %s from %s", sess.User(), sess.RemoteAddr())

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	cmd.Wait()
	log.Printf("Session ended: %s", sess.User())
}

// ListenAndServe runs both listeners and returns when either fails
func (s *Server) ListenAndServe() error {
	errc := make(chan error, 2)
	go func() {
		log.Printf("Account service listening at %s", s.Http.Addr)
		errc <- s.Http.ListenAndServe()
	}()
	go func() {
		log.Printf("SSH listening at %s", s.Addr)
		errc <- s.Server.ListenAndServe()
	}()
	return <-errc
}

func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.Http.Shutdown(ctx)
	sshErr := s.Server.Shutdown(ctx)
	if httpErr != nil {
		return httpErr
	}
	return sshErr
}
