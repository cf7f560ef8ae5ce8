package tui

import (
	"testing"

	"github.com/vovakirdan/flappy-phoenix/internal/config"
	"github.com/vovakirdan/flappy-phoenix/internal/core"
)

func TestSSHSessionSeed(t *testing.T) {
	fixed := &SSHServer{config: SSHServerConfig{Seed: 42}}
	if got := fixed.sessionSeed(); got != 42 {
		t.Errorf("sessionSeed() = %d, want the configured 42", got)
	}

	clock := &SSHServer{config: DefaultSSHServerConfig()}
	if got := clock.sessionSeed(); got == 0 {
		t.Error("unset seed should fall back to the clock")
	}
}

func TestSSHSessionsShareFixedSeed(t *testing.T) {
	srv := &SSHServer{config: SSHServerConfig{Seed: 7, TickRate: 60, Game: config.Default()}}

	gapTop := func() float64 {
		m := NewModel(Options{
			Game:    srv.config.Game,
			Runtime: core.RuntimeConfig{ScreenW: 48, ScreenH: 66, TickRate: srv.config.TickRate, Seed: srv.sessionSeed()},
			Name:    "Ada",
		})
		if err := m.Engine().Start("Ada"); err != nil {
			t.Fatalf("Start() = %v", err)
		}
		return m.Engine().State().Obstacles[0].GapTop
	}

	if a, b := gapTop(), gapTop(); a != b {
		t.Errorf("sessions with a fixed seed placed gaps at %v and %v", a, b)
	}
}
