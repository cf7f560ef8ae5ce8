package game

import "github.com/vovakirdan/flappy-phoenix/internal/core"

// Image is an opaque, pre-loaded visual asset supplied by the host.
// Bounds reports the source size in the host's native units.
type Image interface {
	Bounds() (w, h int)
}

// Assets holds the four images the game draws every frame.
// Nil images are passed to the surface as-is; hosts decide how to draw them.
type Assets struct {
	Sprite     Image
	PipeTop    Image
	PipeBottom Image
	Background Image
}

// Surface is the 2D drawing capability the engine renders through.
// Coordinates are playfield world units; the host maps them to its display.
type Surface interface {
	// Size returns the drawable area in world units.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	// FillRect paints a solid rectangle.
	FillRect(r core.Rect, c core.Color)

	// DrawImage draws img scaled to fill dst, under the current transform.
	DrawImage(img Image, dst core.Rect)

	// FillText draws text horizontally centered on x at row y.
	FillText(text string, x, y float64, c core.Color)

	// Save pushes the current transform; Restore pops it.
	Save()
	Restore()

	// Translate and Rotate (radians, clockwise on screen) compose onto the current transform.
	Translate(x, y float64)
	Rotate(theta float64)
}

// Scheduler is the host's "run this before the next repaint" primitive.
// Implementations must not invoke fn synchronously from RequestFrame.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// RequestFrame calls f(fn).
func (f SchedulerFunc) RequestFrame(fn func()) {
	f(fn)
}
