// Package game implements the Flappy Phoenix round loop.
//
// An Engine owns all simulation state. The host supplies a Surface to draw on,
// a Scheduler that runs the next tick before the following repaint, and the
// pre-loaded Assets. Start begins a round and runs the first tick at once;
// each tick then requests the next one until the player collides with a
// barrier or leaves the playfield, at which point the result is reported
// through Hooks.OnRoundEnd and the engine goes back to Idle.
//
// The engine is not safe for concurrent use. Hosts call Start, Flap, Stop
// and the scheduled ticks from a single goroutine.
package game

import (
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy-phoenix/internal/config"
)

var (
	// ErrEmptyName is returned by Start when the player name is blank.
	ErrEmptyName = errors.New("game: player name is required")

	// ErrRoundInProgress is returned by Start while a round is running.
	ErrRoundInProgress = errors.New("game: round already in progress")
)

// Engine runs rounds of the game.
type Engine struct {
	cfg       config.Config
	surface   Surface
	scheduler Scheduler
	assets    Assets
	rng       *rand.Rand
	logger    *log.Logger
	hooks     Hooks

	phase   Phase
	state   State
	roundID string
	last    *Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for round lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHooks sets the host callbacks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithRand sets the random source used for gap placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds gap placement; 0 keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// New creates an idle engine. The configuration is assumed to be validated.
func New(cfg config.Config, surface Surface, scheduler Scheduler, assets Assets, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		surface:   surface,
		scheduler: scheduler,
		assets:    assets,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    log.New(io.Discard),
		phase:     PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a round for the named player and runs its first tick.
// A blank name leaves the engine, including the previous round's state, untouched.
func (e *Engine) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if e.phase == PhaseRunning {
		return ErrRoundInProgress
	}

	e.state = State{
		Running:         true,
		Score:           0,
		PlayerY:         e.cfg.Playfield.Height / 2,
		PlayerVelocityY: 0,
		Obstacles:       make([]Obstacle, 0, 4),
		FrameCount:      0,
		PlayerName:      name,
	}
	e.roundID = uuid.NewString()
	e.phase = PhaseRunning

	e.logger.Info("round started", "round", e.roundID, "player", name)

	e.Tick()
	return nil
}

// Flap gives the player an instantaneous upward impulse.
// The impulse replaces the accumulated velocity. Ignored while idle.
func (e *Engine) Flap() {
	if e.phase != PhaseRunning {
		return
	}
	e.state.PlayerVelocityY = e.cfg.Physics.FlapImpulse
}

// Stop abandons the running round without reporting a result.
// Any tick already requested from the scheduler becomes a no-op.
func (e *Engine) Stop() {
	if e.phase != PhaseRunning {
		return
	}
	e.state.Running = false
	e.phase = PhaseIdle
	e.logger.Info("round abandoned", "round", e.roundID, "player", e.state.PlayerName, "score", e.state.Score)
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Running reports whether a round is in progress.
func (e *Engine) Running() bool {
	return e.phase == PhaseRunning
}

// State returns a copy of the simulation state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// LastResult returns the result of the most recent finished round.
func (e *Engine) LastResult() (Result, bool) {
	if e.last == nil {
		return Result{}, false
	}
	return *e.last, true
}

// end terminates the round and reports its result.
func (e *Engine) end(cause EndCause) {
	e.state.Running = false
	e.phase = PhaseIdle

	result := Result{
		RoundID:    e.roundID,
		PlayerName: e.state.PlayerName,
		Score:      e.state.Score,
		Frames:     e.state.FrameCount,
		Cause:      cause,
	}
	e.last = &result

	e.logger.Info("round ended",
		"round", result.RoundID,
		"player", result.PlayerName,
		"score", result.Score,
		"frames", result.Frames,
		"cause", result.Cause,
	)

	if e.hooks.OnRoundEnd != nil {
		e.hooks.OnRoundEnd(result)
	}
}
