package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI.
// Piece colors come from the pieces themselves.
// Background should be an explicit color: the terminal default has no RGB
// value, so the landing shadow falls back to Dot.
type Theme struct {
	Name       string      `json:"name"`
	Background tcell.Color `json:"background"`
	Dot        tcell.Color `json:"dot"`
	Border     tcell.Color `json:"border"`
	Label      tcell.Color `json:"label"`
	Value      tcell.Color `json:"value"`
	Help       tcell.Color `json:"help"`
	OverlayBg  tcell.Color `json:"overlayBg"`
	OverlayFg  tcell.Color `json:"overlayFg"`
}

// ThemeHex is the serialized form of a Theme
type ThemeHex struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Dot        string `json:"dot"`
	Border     string `json:"border"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	Help       string `json:"help"`
	OverlayBg  string `json:"overlayBg"`
	OverlayFg  string `json:"overlayFg"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Background.Hex()),
		fmtHex(t.Dot.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Value.Hex()),
		fmtHex(t.Help.Hex()),
		fmtHex(t.OverlayBg.Hex()),
		fmtHex(t.OverlayFg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Background),
		tcell.GetColor(t.Dot),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Value),
		tcell.GetColor(t.Help),
		tcell.GetColor(t.OverlayBg),
		tcell.GetColor(t.OverlayFg),
	}
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	if want == ThemeBasic.Name {
		return ThemeBasic, nil
	}

	return Theme{}, ErrNoTheme
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var themes []ThemeHex
	if err := json.Unmarshal(b, &themes); err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}
	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                     // Name
	tcell.NewHexColor(0x000000), // Background
	tcell.NewHexColor(0x1c1c1c), // Dot
	tcell.Color247,              // Border
	tcell.Color247,              // Label
	tcell.ColorWhite,            // Value
	tcell.Color240,              // Help
	tcell.Color236,              // OverlayBg
	tcell.ColorWhite,            // OverlayFg
}
