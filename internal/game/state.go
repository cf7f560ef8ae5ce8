package game

import (
	"slices"

	"github.com/vovakirdan/flappy-phoenix/internal/core"
)

// Phase is the state of the round state machine.
type Phase int

const (
	// PhaseIdle shows the splash or the last round's summary; no simulation runs.
	PhaseIdle Phase = iota
	// PhaseRunning is the only phase with per-tick work.
	PhaseRunning
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Obstacle is a barrier pair with a vertical gap starting at GapTop.
type Obstacle struct {
	X      float64 // Left edge
	GapTop float64 // Height of the upper barrier
	Passed bool    // Set once, when the player clears the trailing edge
}

// TopRect returns the upper barrier: [X, X+width) x [0, GapTop).
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.GapTop)
}

// BottomRect returns the lower barrier: [X, X+width) x [GapTop+gap, fieldH).
func (o Obstacle) BottomRect(width, gap, fieldH float64) core.Rect {
	bottomY := o.GapTop + gap
	return core.NewRect(o.X, bottomY, width, fieldH-bottomY)
}

// State is the mutable simulation state of one round.
type State struct {
	Running         bool
	Score           int
	PlayerY         float64
	PlayerVelocityY float64
	Obstacles       []Obstacle // Spawn order, which is also left-to-right order
	FrameCount      int
	PlayerName      string
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	s.Obstacles = slices.Clone(s.Obstacles)
	return s
}

// EndCause tells why a round ended.
type EndCause int

const (
	EndCollision EndCause = iota
	EndOutOfBounds
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case EndCollision:
		return "collision"
	case EndOutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Result is reported to the host when a round ends.
type Result struct {
	RoundID    string
	PlayerName string
	Score      int
	Frames     int
	Cause      EndCause
}

// Hooks are host callbacks invoked synchronously from inside a tick.
// Either field may be nil.
type Hooks struct {
	OnScore    func(score int)
	OnRoundEnd func(Result)
}
