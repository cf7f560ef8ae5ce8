package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-phoenix/internal/core"
	"github.com/vovakirdan/flappy-phoenix/internal/game"
)

// affine is a 2D transform in canvas order:
// x' = a*x + c*y + e, y' = b*x + d*y + f.
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// invert maps a world point back into local coordinates.
func (m affine) invert(x, y float64) (float64, float64, bool) {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		return 0, 0, false
	}
	x, y = x-m.e, y-m.f
	return (m.d*x - m.c*y) / det, (-m.b*x + m.a*y) / det, true
}

// Canvas implements game.Surface on a character screen.
// World coordinates are scaled so the playfield fills the screen.
type Canvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
	cur    affine
	stack  []affine
}

// NewCanvas creates a canvas of cols x rows cells showing a worldW x worldH playfield.
func NewCanvas(cols, rows int, worldW, worldH float64) *Canvas {
	return &Canvas{
		screen: core.NewScreen(cols, rows),
		worldW: worldW,
		worldH: worldH,
		cur:    identity,
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Resize changes the cell dimensions; the playfield is rescaled on the next draw.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Size returns the playfield size in world units.
func (c *Canvas) Size() (float64, float64) {
	return c.worldW, c.worldH
}

// Clear erases every cell.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the last saved transform. An unbalanced Restore resets to identity.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.cur = identity
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (x, y) in the current local space.
func (c *Canvas) Translate(x, y float64) {
	m := c.cur
	c.cur.e = m.a*x + m.c*y + m.e
	c.cur.f = m.b*x + m.d*y + m.f
}

// Rotate turns the local axes by theta radians, clockwise on screen.
func (c *Canvas) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	m := c.cur
	c.cur.a = m.a*cos + m.c*sin
	c.cur.b = m.b*cos + m.d*sin
	c.cur.c = m.c*cos - m.a*sin
	c.cur.d = m.d*cos - m.b*sin
}

// FillRect paints every cell whose center falls inside r.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	c.paint(r, func(_, _ float64) (rune, bool) {
		return '░', true
	}, color)
}

// DrawImage scales img onto dst. Non-sprite and nil images are skipped.
func (c *Canvas) DrawImage(img game.Image, dst core.Rect) {
	sprite, ok := img.(*Sprite)
	if !ok || sprite == nil {
		return
	}
	c.paint(dst, sprite.At, sprite.Color)
}

// FillText writes text centered on x at the row containing y.
func (c *Canvas) FillText(text string, x, y float64, color core.Color) {
	wx, wy := c.cur.apply(x, y)
	sx, sy := c.scale()
	col := int(math.Round(wx*sx)) - utf8.RuneCountInString(text)/2
	row := int(math.Floor(wy * sy))
	c.screen.DrawColorText(col, row, text, color)
}

// scale returns cells per world unit on each axis.
func (c *Canvas) scale() (float64, float64) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// paint samples every cell under the transformed rectangle.
// Each cell center is mapped back into dst's local space; sample receives
// normalized coordinates within dst.
func (c *Canvas) paint(dst core.Rect, sample func(u, v float64) (rune, bool), color core.Color) {
	if dst.W <= 0 || dst.H <= 0 {
		return
	}
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [][2]float64{
		{dst.X, dst.Y}, {dst.Right(), dst.Y},
		{dst.X, dst.Bottom()}, {dst.Right(), dst.Bottom()},
	} {
		x, y := c.cur.apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0 := core.Max(int(math.Floor(minX*sx)), 0)
	x1 := core.Min(int(math.Ceil(maxX*sx)), c.screen.Width())
	y0 := core.Max(int(math.Floor(minY*sy)), 0)
	y1 := core.Min(int(math.Ceil(maxY*sy)), c.screen.Height())

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			lx, ly, ok := c.cur.invert((float64(cx)+0.5)/sx, (float64(cy)+0.5)/sy)
			if !ok || !dst.Contains(lx, ly) {
				continue
			}
			if r, ok := sample((lx-dst.X)/dst.W, (ly-dst.Y)/dst.H); ok {
				c.screen.SetCell(cx, cy, r, color)
			}
		}
	}
}
