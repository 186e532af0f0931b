package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WangLucas2013/Sum-Game/internal/core"
	"github.com/WangLucas2013/Sum-Game/internal/storage"
)

// modeOption describes one entry of the mode selector.
type modeOption struct {
	gameID string
	label  string
}

var modeOptions = []modeOption{
	{gameID: "sum", label: "Classic (row after every match)"},
	{gameID: "sum_timed", label: "Timed (row every 10 seconds)"},
}

// ModeModel lets users choose between the classic and timed modes.
type ModeModel struct {
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	highScores map[string]int
	selected   string
	choosing   bool
	quitting   bool
}

// NewModeModel creates a new mode selection model. The store may be nil;
// high scores are then simply not shown.
func NewModeModel(width, height int, store *storage.Store) ModeModel {
	highScores := make(map[string]int)
	if store != nil {
		for _, opt := range modeOptions {
			if high, err := store.HighScore(opt.gameID); err == nil {
				highScores[opt.gameID] = high
			}
		}
	}

	return ModeModel{
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		highScores: highScores,
		choosing:   true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(modeOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = modeOptions[m.cursor].gameID
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S U M   G A M E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, opt := range modeOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, opt.label)
		if high, ok := m.highScores[opt.gameID]; ok && high > 0 {
			line = fmt.Sprintf("%s  (best: %d)", line, high)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen game id, or empty if none was chosen.
func (m ModeModel) Selected() string {
	if m.choosing {
		return ""
	}
	return m.selected
}

// centerText pads text on the left so it appears centered.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunModeSelector runs the mode selection and returns the chosen game id.
// Returns empty if the user quit instead of choosing.
func RunModeSelector(cfg core.RuntimeConfig, store *storage.Store) (string, error) {
	model := NewModeModel(cfg.ScreenW, cfg.ScreenH, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(ModeModel)
	if !ok {
		return "", nil
	}

	return m.Selected(), nil
}
