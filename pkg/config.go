package pkg

import (
	"time"

	"github.com/qnkhuat/tetristerm/pkg/gui"
)

// Config is filled from command line flags
type Config struct {
	LogPath   string // Client log file
	Server    string // Base URL of the account service
	Username  string // Prefills the login form
	Offline   bool   // Skip login and score submission
	ThemeFile string // JSON array of themes
	ThemeName string
	Seed      int64 // Piece sequence seed, 0 picks one from the clock
}

func DefaultConfig() Config {
	return Config{
		LogPath:   "./log",
		Server:    "http://localhost" + HttpPort,
		ThemeName: gui.ThemeBasic.Name,
	}
}

func (c Config) Theme() gui.Theme {
	return loadTheme(c.ThemeFile, c.ThemeName)
}

func (c Config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
