package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-phoenix/internal/config"
	"github.com/vovakirdan/flappy-phoenix/internal/core"
	"github.com/vovakirdan/flappy-phoenix/internal/game"
)

// footerHeight is the number of rows under the playfield.
const footerHeight = 2

const emptyNameNotice = "Please enter your name to start!"

// Options configures a Model.
type Options struct {
	Game    config.Config
	Runtime core.RuntimeConfig
	Name    string       // Prefilled player name
	Logger  *log.Logger  // Defaults to discarding output
	Assets  *game.Assets // Defaults to DefaultAssets()
}

// roundStatus is written by engine hooks and read by the view.
type roundStatus struct {
	score  int
	result *game.Result
}

// Model is the Bubble Tea model hosting one player's game.
type Model struct {
	engine *game.Engine
	canvas *Canvas
	sched  *frameScheduler
	status *roundStatus
	logger *log.Logger

	input textinput.Model
	keys  KeyMap
	help  help.Model

	width    int
	height   int
	notice   string
	quitting bool
}

// NewModel creates a model with an idle engine and a focused name field.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	assets := DefaultAssets()
	if opts.Assets != nil {
		assets = *opts.Assets
	}

	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	status := &roundStatus{}
	canvas := NewCanvas(rt.ScreenW, core.Max(rt.ScreenH-footerHeight, 1), opts.Game.Playfield.Width, opts.Game.Playfield.Height)
	sched := newFrameScheduler(rt.FrameInterval())

	engine := game.New(opts.Game, canvas, sched, assets,
		game.WithLogger(logger),
		game.WithSeed(rt.Seed),
		game.WithHooks(game.Hooks{
			OnScore: func(score int) {
				status.score = score
			},
			OnRoundEnd: func(r game.Result) {
				status.result = &r
			},
		}),
	)

	input := textinput.New()
	input.Placeholder = "your name"
	input.Prompt = "Name: "
	input.CharLimit = 24
	input.Width = 24
	input.SetValue(opts.Name)
	input.Focus()

	return Model{
		engine: engine,
		canvas: canvas,
		sched:  sched,
		status: status,
		logger: logger,
		input:  input,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  rt.ScreenW,
		height: rt.ScreenH,
	}
}

// Init draws the splash screen and starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	m.engine.DrawSplash()
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	running := m.engine.Running()

	switch m.keys.MapKey(msg, running) {
	case core.ActionQuit:
		m.engine.Stop()
		m.sched.cancel()
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionFlap:
		m.engine.Flap()
		return m, nil

	case core.ActionAbandon:
		m.engine.Stop()
		m.sched.cancel()
		m.input.Focus()
		m.engine.DrawSplash()
		return m, textinput.Blink

	case core.ActionStart:
		return m.startRound()
	}

	if running {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startRound validates the typed name and hands it to the engine.
// The engine runs the first tick synchronously; later ticks come from the scheduler.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	prev := *m.status
	m.status.score = 0
	m.status.result = nil

	err := m.engine.Start(m.input.Value())
	switch {
	case errors.Is(err, game.ErrEmptyName):
		*m.status = prev
		m.notice = emptyNameNotice
		return m, nil
	case err != nil:
		*m.status = prev
		m.logger.Error("cannot start round", "error", err)
		return m, nil
	}

	m.notice = ""
	if !m.engine.Running() {
		// The first tick already ended the round; stay on the name field.
		m.sched.cancel()
		return m, textinput.Blink
	}
	m.input.Blur()
	return m, m.sched.take()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.canvas.Resize(msg.Width, core.Max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width

	if !m.engine.Running() && m.status.result == nil {
		m.engine.DrawSplash()
	}
	return m, nil
}

// handleTick runs the frame the engine asked for.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.fire(msg) {
		return m, nil
	}
	if !m.engine.Running() {
		// Round over: the last frame stays on screen under the summary.
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, m.sched.take()
}

// saveScreenshot writes the current playfield to ~/.phoenix/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".phoenix", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("phoenix_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Screen()) + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.engine.Running() {
		st := m.engine.State()
		status := scoreStyle.Render(fmt.Sprintf("Score: %d", m.status.score)) + "  " +
			playerStyle.Render(st.PlayerName)
		return status + "\n" + m.help.View(runningKeys(m.keys))
	}

	var top string
	switch {
	case m.notice != "":
		top = noticeStyle.Render(m.notice)
	case m.status.result != nil:
		top = summaryStyle.Render(Summary(*m.status.result))
	}

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), "   ", m.help.View(idleKeys(m.keys)))
	return top + "\n" + bottom
}

// Summary is the round-end message shown to the player.
func Summary(r game.Result) string {
	return fmt.Sprintf("Game Over, %s! Your score: %d", r.PlayerName, r.Score)
}

// Notice returns the inline prompt currently shown, if any.
func (m Model) Notice() string {
	return m.notice
}

// Engine returns the game engine driven by this model.
func (m Model) Engine() *game.Engine {
	return m.engine
}

// LastSummary returns the summary of the last finished round.
func (m Model) LastSummary() (string, bool) {
	if m.status.result == nil {
		return "", false
	}
	return Summary(*m.status.result), true
}

// Run starts a local Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
