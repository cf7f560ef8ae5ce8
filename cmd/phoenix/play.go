package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-phoenix/internal/config"
	"github.com/vovakirdan/flappy-phoenix/internal/core"
	"github.com/vovakirdan/flappy-phoenix/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Type your name and press Enter to start a round.

Controls:
  Space/Up/W   - Flap
  Esc          - Give up the round
  Ctrl+S       - Save a screenshot to ~/.phoenix/screenshots
  Ctrl+C       - Quit

Examples:
  phoenix play
  phoenix play --name Ada
  phoenix play --fps 30 --seed 7
  phoenix play --config ./phoenix.yaml --log-file phoenix.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("phoenix", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed(),
		},
		Name:   flagName,
		Logger: logger,
	})
}
