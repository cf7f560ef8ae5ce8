package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-phoenix/internal/core"
	"github.com/vovakirdan/flappy-phoenix/internal/game"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawColorText(2, 0, "phoenix", core.ColorOrange)
	s.DrawColorText(2, 2, "pipe", core.ColorGreen)

	out := RenderScreen(s)
	for _, want := range []string{"phoenix", "pipe"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen lacks %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("line breaks = %d, want 2", got)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		result game.Result
		want   string
	}{
		{game.Result{PlayerName: "Ada", Score: 0}, "Game Over, Ada! Your score: 0"},
		{game.Result{PlayerName: "Grace Hopper", Score: 12}, "Game Over, Grace Hopper! Your score: 12"},
	}
	for _, tt := range tests {
		if got := Summary(tt.result); got != tt.want {
			t.Errorf("Summary() = %q, want %q", got, tt.want)
		}
	}
}

func TestDefaultAssetsAreSprites(t *testing.T) {
	assets := DefaultAssets()
	for name, img := range map[string]game.Image{
		"sprite":      assets.Sprite,
		"pipe top":    assets.PipeTop,
		"pipe bottom": assets.PipeBottom,
		"background":  assets.Background,
	} {
		s, ok := img.(*Sprite)
		if !ok || s == nil {
			t.Errorf("%s is %T, want *Sprite", name, img)
			continue
		}
		if w, h := s.Bounds(); w == 0 || h == 0 {
			t.Errorf("%s has empty bounds", name)
		}
	}
}

func TestSpriteAtTransparency(t *testing.T) {
	s := &Sprite{Pattern: []string{"a b", "cd"}}
	tests := []struct {
		u, v   float64
		want   rune
		opaque bool
	}{
		{0.1, 0.1, 'a', true},
		{0.5, 0.1, 0, false},
		{0.9, 0.1, 'b', true},
		{0.1, 0.9, 'c', true},
		{0.9, 0.9, 0, false}, // short row
	}
	for _, tt := range tests {
		r, ok := s.At(tt.u, tt.v)
		if ok != tt.opaque || r != tt.want {
			t.Errorf("At(%v,%v) = %q,%v, want %q,%v", tt.u, tt.v, r, ok, tt.want, tt.opaque)
		}
	}
}
