package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-phoenix/internal/config"
	"github.com/vovakirdan/flappy-phoenix/internal/core"
)

// namedImage is a stand-in asset that only knows its name.
type namedImage string

func (namedImage) Bounds() (int, int) { return 1, 1 }

var testAssets = Assets{
	Sprite:     namedImage("sprite"),
	PipeTop:    namedImage("pipe-top"),
	PipeBottom: namedImage("pipe-bottom"),
	Background: namedImage("background"),
}

// recordingSurface logs every drawing call as a short string.
type recordingSurface struct {
	calls []string
}

func (s *recordingSurface) Size() (float64, float64) { return 480, 640 }
func (s *recordingSurface) Clear()                    { s.record("clear") }
func (s *recordingSurface) Save()                     { s.record("save") }
func (s *recordingSurface) Restore()                  { s.record("restore") }

func (s *recordingSurface) FillRect(r core.Rect, _ core.Color) {
	s.record("fill %v,%v %vx%v", r.X, r.Y, r.W, r.H)
}

func (s *recordingSurface) DrawImage(img Image, dst core.Rect) {
	s.record("image %v %v,%v %vx%v", img, dst.X, dst.Y, dst.W, dst.H)
}

func (s *recordingSurface) FillText(text string, x, y float64, _ core.Color) {
	s.record("text %q %v,%v", text, x, y)
}

func (s *recordingSurface) Translate(x, y float64) { s.record("translate %v,%v", x, y) }
func (s *recordingSurface) Rotate(theta float64)   { s.record("rotate %v", theta) }

func (s *recordingSurface) record(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
}

// manualScheduler queues frame requests until the test fires them.
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) RequestFrame(fn func()) {
	m.pending = append(m.pending, fn)
}

// fire runs the oldest pending frame. It returns false if nothing was pending.
func (m *manualScheduler) fire() bool {
	if len(m.pending) == 0 {
		return false
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	fn()
	return true
}

// fireN runs up to n frames and returns how many actually ran.
func (m *manualScheduler) fireN(n int) int {
	ran := 0
	for ran < n && m.fire() {
		ran++
	}
	return ran
}

type harness struct {
	engine  *Engine
	surface *recordingSurface
	sched   *manualScheduler
	results []Result
	scores  []int
}

func newHarness(t *testing.T, cfg config.Config) *harness {
	t.Helper()
	h := &harness{
		surface: &recordingSurface{},
		sched:   &manualScheduler{},
	}
	h.engine = New(cfg, h.surface, h.sched, testAssets,
		WithRand(rand.New(rand.NewSource(7))),
		WithHooks(Hooks{
			OnScore:    func(score int) { h.scores = append(h.scores, score) },
			OnRoundEnd: func(r Result) { h.results = append(h.results, r) },
		}),
	)
	return h
}

// start begins a round and fails the test on error.
func (h *harness) start(t *testing.T, name string) {
	t.Helper()
	if err := h.engine.Start(name); err != nil {
		t.Fatalf("Start(%q) failed: %v", name, err)
	}
}

// hover pins the player so the next tick leaves it at y with zero velocity.
func (h *harness) hover(y float64) {
	h.engine.state.PlayerVelocityY = -h.engine.cfg.Physics.Gravity
	h.engine.state.PlayerY = y
}

// floatingConfig has gravity weak enough that a round survives hundreds of ticks.
func floatingConfig() config.Config {
	cfg := config.Default()
	cfg.Physics.Gravity = 0.001
	return cfg
}
