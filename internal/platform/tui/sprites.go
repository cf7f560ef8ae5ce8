package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/flappy-phoenix/internal/core"
	"github.com/vovakirdan/flappy-phoenix/internal/game"
)

// Sprite is a terminal image: rows of runes scaled onto the target rectangle.
// Spaces are transparent.
type Sprite struct {
	Pattern []string
	Color   core.Color
}

// Bounds returns the pattern size in cells.
func (s *Sprite) Bounds() (int, int) {
	w := 0
	for _, row := range s.Pattern {
		w = core.Max(w, utf8.RuneCountInString(row))
	}
	return w, len(s.Pattern)
}

// At samples the pattern at normalized coordinates u, v in [0, 1).
func (s *Sprite) At(u, v float64) (rune, bool) {
	w, h := s.Bounds()
	if w == 0 || h == 0 {
		return 0, false
	}
	row := []rune(s.Pattern[core.Clamp(int(v*float64(h)), 0, h-1)])
	col := core.Clamp(int(u*float64(w)), 0, w-1)
	if col >= len(row) || row[col] == ' ' {
		return 0, false
	}
	return row[col], true
}

var (
	phoenixSprite = &Sprite{
		Pattern: []string{"~<@>"},
		Color:   core.ColorOrange,
	}
	pipeTopSprite = &Sprite{
		Pattern: []string{
			"▐██▌",
			"▐██▌",
			"▐██▌",
			"▀▀▀▀",
		},
		Color: core.ColorGreen,
	}
	pipeBottomSprite = &Sprite{
		Pattern: []string{
			"▄▄▄▄",
			"▐██▌",
			"▐██▌",
			"▐██▌",
		},
		Color: core.ColorGreen,
	}
	backgroundSprite = &Sprite{
		Pattern: []string{
			"        .           ",
			"   .          *     ",
			"              .   . ",
			"      *             ",
			"                    ",
			"____________________",
		},
		Color: core.ColorBlue,
	}
)

// DefaultAssets returns the built-in terminal sprites.
func DefaultAssets() game.Assets {
	return game.Assets{
		Sprite:     phoenixSprite,
		PipeTop:    pipeTopSprite,
		PipeBottom: pipeBottomSprite,
		Background: backgroundSprite,
	}
}
