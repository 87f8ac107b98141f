package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/progress"
	"github.com/vovakirdan/tilefit/internal/registry"
	"github.com/vovakirdan/tilefit/internal/storage"
)

// LevelSelection holds the user's selection from the level menu.
type LevelSelection struct {
	Level int // 0-based level to start at
}

// levelRow is one listed level.
type levelRow struct {
	name  string
	best  string // formatted best time, empty if never cleared
	clear int    // completion count
}

// LevelMenuModel is the level picker of one pack. The first entry resumes
// from saved progress.
type LevelMenuModel struct {
	pack         registry.Pack
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	levels       []levelRow
	resume       int
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a level selection model for pack.
func NewLevelMenuModel(pack registry.Pack, store *storage.Store, width, height int) LevelMenuModel {
	rows := make([]levelRow, pack.Len())
	for i := range rows {
		name, _ := pack.Level(i)
		rows[i].name = name
	}

	resume := 0
	if store != nil {
		if stats, err := store.LevelStats(pack.ID()); err == nil {
			for _, s := range stats {
				if s.Level >= 0 && s.Level < len(rows) {
					rows[s.Level].best = progress.FormatElapsed(s.Best)
					rows[s.Level].clear = s.Count
				}
			}
		}
		if level, ok, err := store.Progress(pack.ID()); err == nil && ok && level < len(rows) {
			resume = level
		}
	}

	return LevelMenuModel{
		pack:      pack,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		levels:    rows,
		resume:    resume,
		choosing:  true,
		theme:     DefaultTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor == 0 {
			m.selection = LevelSelection{Level: m.resume}
		} else {
			m.selection = LevelSelection{Level: m.cursor - 1}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is the number of level rows that fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(strings.ToUpper(m.pack.Title())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	// Entry 0 is the resume option, entries 1..N the levels.
	end := min(m.scrollOffset+m.visibleItems(), len(m.levels)+1)
	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		var line string
		if i == 0 {
			if m.resume > 0 {
				line = fmt.Sprintf("Continue from level %d", m.resume+1)
			} else {
				line = "Start from Beginning"
			}
		} else {
			row := m.levels[i-1]
			line = fmt.Sprintf("%2d. %-14s", i, truncate(row.name, 14))
			if row.best != "" {
				line += fmt.Sprintf("  best %s  x%d", row.best, row.clear)
			}
		}
		b.WriteString(centerText(style.Render(cursor+line), m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levels)+1 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunLevelSelector runs the level selection and returns the selection.
// A nil selection means the user went back or quit.
func RunLevelSelector(pack registry.Pack, store *storage.Store, cfg core.RuntimeConfig) (sel *LevelSelection, quit bool, err error) {
	model := NewLevelMenuModel(pack, store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, true, nil
	}

	if m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}

	return m.Selected(), false, nil
}
