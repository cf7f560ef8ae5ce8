// Package config provides YAML-based game configuration for Flappy Phoenix.
// All values are in world units (virtual playfield pixels) and ticks.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tunables of the game loop.
type Config struct {
	Playfield Playfield `yaml:"playfield"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
}

// Playfield is the virtual drawing area the simulation runs in.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the per-tick motion constants.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`         // Added to velocity every tick
	FlapImpulse    float64 `yaml:"flap_impulse"`    // Velocity set by a flap (negative = up)
	PipeSpeed      float64 `yaml:"pipe_speed"`      // Leftward obstacle movement per tick
	RotationFactor float64 `yaml:"rotation_factor"` // Sprite tilt in radians per unit of velocity
}

// Obstacles defines barrier geometry and the spawn timer.
type Obstacles struct {
	PipeWidth     float64 `yaml:"pipe_width"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	Margin        float64 `yaml:"margin"`         // Minimum distance of the gap from top and bottom
}

// Player defines the sprite's fixed column and hitbox.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have positive size, got %vx%v",
			ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalid, c.Physics.Gravity)
	case c.Physics.FlapImpulse >= 0:
		return fmt.Errorf("%w: flap_impulse must be negative, got %v", ErrInvalid, c.Physics.FlapImpulse)
	case c.Physics.PipeSpeed <= 0:
		return fmt.Errorf("%w: pipe_speed must be positive, got %v", ErrInvalid, c.Physics.PipeSpeed)
	case c.Obstacles.PipeWidth <= 0 || c.Obstacles.Gap <= 0:
		return fmt.Errorf("%w: pipe_width and gap must be positive", ErrInvalid)
	case c.Obstacles.SpawnInterval < 1:
		return fmt.Errorf("%w: spawn_interval must be at least 1, got %d", ErrInvalid, c.Obstacles.SpawnInterval)
	case c.Obstacles.Margin < 0:
		return fmt.Errorf("%w: margin must not be negative, got %v", ErrInvalid, c.Obstacles.Margin)
	case c.Obstacles.Gap+2*c.Obstacles.Margin > c.Playfield.Height:
		return fmt.Errorf("%w: gap %v with margin %v does not fit playfield height %v",
			ErrInvalid, c.Obstacles.Gap, c.Obstacles.Margin, c.Playfield.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player hitbox must have positive size", ErrInvalid)
	case c.Player.X < 0 || c.Player.X > c.Playfield.Width:
		return fmt.Errorf("%w: player x %v outside playfield", ErrInvalid, c.Player.X)
	}
	return nil
}
