package pkg

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

// InitLog sends the standard logger to dest. The terminal belongs to the UI,
// so clients always log to a file. An empty dest logs to stderr with a colored
// prefix, which is how the server runs.
func InitLog(dest, prefix string) io.Closer {
	if dest == "" {
		log.SetOutput(os.Stderr)
		log.SetPrefix(color.New(color.FgCyan, color.Bold).Sprint(prefix))
		return nopCloser{}
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadTheme resolves the configured theme, falling back to the basic one
func loadTheme(file, name string) gui.Theme {
	if file == "" {
		return gui.ThemeBasic
	}
	themes, err := gui.LoadThemes(file)
	if err != nil {
		log.Printf("Failed to load themes: %v", err)
		return gui.ThemeBasic
	}
	theme, err := gui.ImportThemes(name, themes)
	if err != nil {
		log.Printf("Theme %q: %v", name, err)
		return gui.ThemeBasic
	}
	return theme
}
