package pkg

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/gui"
)

func TestServerClientArgs(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.LogDir = "/var/log/tetristerm"
	s, err := NewServer(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:1998", s.BackendURL())
	assert.Equal(t, []string{
		"--server", "http://localhost:1998",
		"--user", "../alice",
		"--log", "/var/log/tetristerm/tetristerm-.._alice.log",
	}, s.clientArgs("../alice"))
}

func TestServerBackendURLWithHost(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.HttpAddr = "10.0.0.2:8080"
	s, err := NewServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8080", s.BackendURL())
}

func TestServerDefaultHostKeyIsGenerated(t *testing.T) {
	cfg := DefaultServerConfig()
	assert.Empty(t, cfg.HostKeyFile)
	s, err := NewServer(cfg)
	require.NoError(t, err)
	assert.Empty(t, s.HostSigners)
}

func TestServerMissingHostKey(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.HostKeyFile = filepath.Join(t.TempDir(), "missing")
	_, err := NewServer(cfg)
	assert.NoError(t, err)
}

func TestInitLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "client.log")
	f := InitLog(path, "CLIENT: ")
	log.Printf("hello")
	require.NoError(t, f.Close())

	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "CLIENT: ")
	assert.Contains(t, string(b), "hello")
}

func TestConfigTheme(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, gui.ThemeBasic, cfg.Theme())

	path := filepath.Join(t.TempDir(), "themes.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`[{"name":"ocean","background":"#001f3f"}]`), 0644))
	cfg.ThemeFile = path
	cfg.ThemeName = "ocean"
	assert.Equal(t, "ocean", cfg.Theme().Name)

	cfg.ThemeName = "missing"
	assert.Equal(t, gui.ThemeBasic, cfg.Theme())
}
