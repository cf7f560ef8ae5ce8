package game

import "github.com/vovakirdan/flappy-phoenix/internal/core"

// Title is the name shown on the splash screen.
const Title = "Flappy Phoenix"

// DrawSplash renders the idle screen: a dimmed field with the title and a prompt.
// Text rows are placed at fixed fractions of the playfield height.
func (e *Engine) DrawSplash() {
	pf := e.cfg.Playfield
	e.surface.Clear()
	e.surface.FillRect(core.NewRect(0, 0, pf.Width, pf.Height), core.ColorDim)
	e.surface.FillText(Title, pf.Width/2, pf.Height*0.25, core.ColorBrightYellow)
	e.surface.FillText("Enter your name and press Enter to start", pf.Width/2, pf.Height*0.4, core.ColorWhite)
	e.surface.FillText("Space flaps", pf.Width/2, pf.Height*0.45, core.ColorGray)
}
