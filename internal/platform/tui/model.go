package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
	"github.com/vovakirdan/tilefit/internal/progress"
	"github.com/vovakirdan/tilefit/internal/registry"
	"github.com/vovakirdan/tilefit/internal/storage"
)

// Muter is implemented by audio collaborators that can be silenced.
type Muter interface {
	ToggleMute() bool
}

// GameOptions configures a game model.
type GameOptions struct {
	Pack       registry.Pack
	StartLevel int
	Config     *config.TilefitConfig // nil uses the defaults
	Runtime    core.RuntimeConfig
	Store      *storage.Store // nil disables persistence
	Audio      tilefit.Audio  // nil plays nothing
	Logger     *log.Logger    // nil discards
	Menu       bool           // back key returns to a menu instead of quitting
}

// Model is the Bubble Tea model for playing a pack.
type Model struct {
	engine     *tilefit.Engine
	screen     *core.Screen
	surface    *ScreenSurface
	rec        *progress.Recorder
	audio      tilefit.Audio
	config     core.RuntimeConfig
	theme      Theme
	keys       GameKeyMap
	help       help.Model
	width      int
	height     int
	menu       bool
	muted      bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model and its engine.
func NewModel(opts GameOptions) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	tcfg := config.DefaultTilefitConfig()
	if opts.Config != nil {
		tcfg = *opts.Config
	}
	palette, err := tcfg.Theme.Palette()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rec := progress.NewRecorder(opts.Store, logger)
	engine, err := tilefit.New(opts.Pack, tilefit.Options{
		Config:     &tcfg,
		Palette:    &palette,
		Seed:       cfg.Seed,
		Audio:      opts.Audio,
		Logger:     logger,
		StartLevel: opts.StartLevel,
		OnEvent:    rec.OnEvent,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		engine: engine,
		rec:    rec,
		audio:  opts.Audio,
		config: cfg,
		theme:  NewTheme(palette),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		menu:   opts.Menu,
	}
	m.screen = core.NewScreen(m.boardSize())
	m.surface = NewScreenSurface(m.screen, palette)
	return m, nil
}

// boardSize is the screen area left for the canvas above the footer.
func (m Model) boardSize() (int, int) {
	footer := 1
	if m.help.ShowAll {
		footer += len(m.keys.FullHelp()[0])
	}
	return max(m.width, 1), max(m.height-footer, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.boardSize())
		return m, nil

	case TickMsg:
		m.engine.Update(m.config.FrameDelta())
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard shortcuts.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.menu {
			m.backToMenu = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Restart):
		m.engine.RestartLevel()

	case key.Matches(msg, m.keys.Next):
		m.engine.NextLevel()

	case key.Matches(msg, m.keys.Mute):
		if mu, ok := m.audio.(Muter); ok {
			m.muted = mu.ToggleMute()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.boardSize())
	}

	return m, nil
}

// handleMouse normalizes a cell position to the canvas and forwards it.
func (m Model) handleMouse(msg tea.MouseMsg) {
	p := normalize(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
	t := m.engine.Tracker()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			t.OnDown(p)
		}
	case tea.MouseActionRelease:
		t.OnUp(p)
	case tea.MouseActionMotion:
		t.OnMove(p)
	}
}

// normalize maps the centre of cell (x, y) to [0,1] over a w x h board.
func normalize(x, y, w, h int) core.Point {
	return core.Pt(
		core.Clamp((float64(x)+0.5)/float64(max(w, 1)), 0, 1),
		core.Clamp((float64(y)+0.5)/float64(max(h, 1)), 0, 1),
	)
}

// View renders the board and the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.surface, 0)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.footer())
}

func (m Model) footer() string {
	st := m.engine.State()
	sep := m.theme.HUDSeparator.Render(" │ ")

	parts := []string{m.theme.HUDTitle.Render(m.engine.Pack().Title())}
	if st.Thanks {
		parts = append(parts, m.theme.HUDValue.Render("all levels cleared"))
	} else {
		parts = append(parts,
			m.theme.HUDValue.Render(fmt.Sprintf("%d/%d %s", st.Level+1, st.Levels, st.LevelName)),
			m.theme.HUDValue.Render(progress.FormatElapsed(time.Duration(st.Elapsed*float64(time.Millisecond)))),
		)
	}
	if m.rec.Best() > 0 {
		parts = append(parts, m.theme.HUDControls.Render("best "+progress.FormatElapsed(m.rec.Best())))
	}
	if m.rec.Status() != "" {
		parts = append(parts, m.theme.OverlayTitle.Render(m.rec.Status()))
	}
	if m.muted {
		parts = append(parts, m.theme.HUDControls.Render("muted"))
	}

	line := strings.Join(parts, sep)
	if m.help.ShowAll {
		return line + "\n" + m.help.View(m.keys)
	}
	return line + sep + m.help.View(m.keys)
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *tilefit.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a game. It reports whether the
// player asked to go back to the menu.
func Run(opts GameOptions) (backToMenu bool, err error) {
	model, err := NewModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
