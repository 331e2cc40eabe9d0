package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// footerHeight is the number of terminal rows reserved for the help line.
const footerHeight = 1

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// gravityReporter is implemented by games with a variable fall speed.
type gravityReporter interface {
	GravityInterval() time.Duration
}

// loadErrorReporter is implemented by games that fall back to defaults when
// their config cannot be loaded.
type loadErrorReporter interface {
	LoadError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	interval   time.Duration
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil logger
// discards output.
func NewModel(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger.With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
	}
}

// gameConfig returns the runtime config as seen by the game, with the
// footer rows taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("session started",
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)
	if r, ok := m.game.(loadErrorReporter); ok && r.LoadError() != nil {
		m.logger.Warn("config not loaded, using defaults", "error", r.LoadError())
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Snapshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		state := m.game.State()
		m.logger.Info("session ended", "score", state.Score, "lines", state.Lines)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick runs one simulation frame with the input collected since the
// previous frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logFrame(prev, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logFrame records the notable events of one frame.
func (m *Model) logFrame(prev core.GameState, result core.StepResult) {
	state := result.State

	if result.LinesCleared > 0 {
		m.logger.Info("rows cleared",
			"lines", result.LinesCleared,
			"points", result.Points,
			"score", state.Score,
		)
	}
	if result.Locked > 0 {
		m.logger.Debug("piece locked", "score", state.Score)
	}

	if g, ok := m.game.(gravityReporter); ok {
		if interval := g.GravityInterval(); interval != m.interval {
			if m.interval != 0 {
				m.logger.Info("gravity changed", "from", m.interval, "to", interval)
			}
			m.interval = interval
		}
	}

	switch {
	case state.GameOver && !prev.GameOver:
		m.logger.Info("game over", "score", state.Score, "lines", state.Lines)
	case prev.GameOver && !state.GameOver:
		m.logger.Info("restarted")
	case state.Paused != prev.Paused:
		m.logger.Info("pause toggled", "paused", state.Paused)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserDir()
	if dir == "" {
		m.logger.Warn("no home directory for screenshots")
		return
	}
	dir = filepath.Join(dir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// State returns the game state seen at the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
