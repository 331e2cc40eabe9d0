package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// difficulties lists the presets the menu cycles through. The empty preset
// keeps whatever the config file says.
var difficulties = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem // Set when user selects a mode
}

// NewMenuModel creates a new menu model listing every registered mode.
// preset is the initially highlighted difficulty.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	difficulty := 0
	for i, d := range difficulties {
		if d == preset {
			difficulty = i
		}
	}

	return MenuModel{
		items:      items,
		difficulty: difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K G A M E"), 17, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", 0, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, len(item.Title)+2, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("< Difficulty: %s >", difficultyLabel(m.Difficulty()))
	b.WriteString(centerText(diff, 0, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), len(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// difficultyLabel names a preset for display.
func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the highlighted difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width. visible is the printed width of
// text when it carries escape sequences; 0 means len(text).
func centerText(text string, visible, width int) string {
	if visible == 0 {
		visible = len(text)
	}
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID     string
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
	Quit       bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result
	}
	result.GameID = m.Selected().GameID
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, preset),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
