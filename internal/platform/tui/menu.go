package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/startpage-snake/internal/core"
	"github.com/vovakirdan/startpage-snake/internal/registry"
)

// HighScoreLookup returns the best recorded run of a variant.
type HighScoreLookup func(gameID string) int

// Record is the persisted high score shared by all variants of a namespace.
type Record struct {
	Namespace string
	Score     int
}

// MenuSource supplies the scores shown on the start screen.
type MenuSource struct {
	Record Record
	Best   HighScoreLookup // may be nil
}

// MenuItem is one variant on the start screen.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A855F7"))
	menuRecordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4D"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8A2BE2"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the start screen: the namespace record and the variants to
// play.
type MenuModel struct {
	record    Record
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    string
	scores    bool
	quitting  bool
}

// NewMenuModel builds the start screen from the registered variants.
func NewMenuModel(src MenuSource, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if src.Best != nil {
			item.Best = src.Best(g.ID)
		}
		items = append(items, item)
	}

	return MenuModel{
		record:    src.Record,
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.choice = m.items[m.cursor].GameID
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.scores = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	w := m.config.ScreenW
	lines := []string{
		"",
		centerText(menuTitleStyle.Render("S N A K E"), w),
		centerText(menuRecordStyle.Render(m.recordLine()), w),
		"",
	}

	for i, item := range m.items {
		row := fmt.Sprintf("%-16s", item.Title)
		if item.Best > 0 {
			row += fmt.Sprintf("  best run %d", item.Best)
		}
		if i == m.cursor {
			row = menuSelectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, centerText(row, w))
	}

	lines = append(lines, "",
		centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), w),
		"")
	return strings.Join(lines, "\n")
}

func (m MenuModel) recordLine() string {
	if m.record.Score <= 0 {
		return "No high score yet"
	}
	if m.record.Namespace == "" {
		return fmt.Sprintf("High score %d", m.record.Score)
	}
	return fmt.Sprintf("High score %d (%s)", m.record.Score, m.record.Namespace)
}

// Choice returns the chosen variant, empty while none is chosen.
func (m MenuModel) Choice() string {
	return m.choice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scores
}

// Config returns the runtime config, including the latest screen size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the start screen until a variant is chosen or the user leaves.
func RunMenu(src MenuSource, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(src, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), GameID: m.Choice()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), result.GameID == "":
		result.Quit = true
	}
	return result, nil
}
