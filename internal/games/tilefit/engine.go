// Package tilefit implements the drag and placement engine of the tilefit
// puzzle: shapes are dragged from a tray onto a 5x5 grid and commit when
// every filled sub-tile lands on an empty visible cell.
//
// The engine is driven by a fixed-timestep host loop that calls Update and
// then Render. Update owns all mutation; Render only reads.
package tilefit

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
	"github.com/vovakirdan/tilefit/internal/pointer"
	"github.com/vovakirdan/tilefit/internal/registry"
)

// EventKind identifies a session event reported to the host.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventLevelCleared
	EventPackFinished
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level-started"
	case EventLevelCleared:
		return "level-cleared"
	case EventPackFinished:
		return "pack-finished"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a session milestone.
type Event struct {
	Kind    EventKind
	Pack    string
	Level   int     // 0-based level index
	Name    string  // level name, empty for EventPackFinished
	Elapsed float64 // milliseconds played on the level, for EventLevelCleared
}

// Options configures an Engine. The zero value is usable.
type Options struct {
	Config     *config.TilefitConfig // nil uses config.DefaultTilefitConfig()
	Palette    *config.Palette       // nil uses config.DefaultPalette()
	Seed       int64                 // used when Rand is nil; 0 means current time
	Rand       *rand.Rand
	Audio      Audio       // nil plays nothing
	Logger     *log.Logger // nil discards
	StartLevel int
	OnEvent    func(Event)
}

// Engine is the placement state machine for one session over a pack.
// It is not safe for concurrent use.
type Engine struct {
	pack    registry.Pack
	cfg     config.TilefitConfig
	palette config.Palette
	rng     *rand.Rand
	audio   Audio
	log     *log.Logger
	onEvent func(Event)
	tracker *pointer.Tracker

	// Session
	level        int
	levelName    string
	clock        float64
	elapsed      float64 // time spent on the current level
	musicStarted bool
	thanks       bool

	// Level transitions
	tRestart     float64
	tWin         float64
	hasNext      bool
	hoveringNext bool

	// Background
	bgSpeed float64
	bgTiles []core.Point

	// Board
	grid      Grid
	tray      []*Shape
	dragged   *Shape
	hovered   *Shape
	committed *Shape
	decay     [levels.SubTiles]core.Point
	tShake    float64
}

// New creates an engine over pack. Every level of the pack is validated up
// front so that level loads during play cannot fail.
func New(pack registry.Pack, opts Options) (*Engine, error) {
	if err := levels.ValidatePack(pack); err != nil {
		return nil, fmt.Errorf("tilefit: invalid pack %q: %w", pack.ID(), err)
	}

	e := &Engine{
		pack:    pack,
		audio:   opts.Audio,
		log:     opts.Logger,
		onEvent: opts.OnEvent,
		rng:     opts.Rand,
	}

	if opts.Config != nil {
		e.cfg = *opts.Config
	} else {
		e.cfg = config.DefaultTilefitConfig()
	}
	if opts.Palette != nil {
		e.palette = *opts.Palette
	} else {
		e.palette = config.DefaultPalette()
	}
	if e.audio == nil {
		e.audio = NopAudio{}
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}

	e.tracker = pointer.NewWithWindow(e.cfg.Timing.DoubleClick)
	e.bgSpeed = e.cfg.Background.Speed
	e.level = max(opts.StartLevel, 0)
	e.restartLevel()

	return e, nil
}

// Tracker returns the pointer tracker hosts feed input into.
func (e *Engine) Tracker() *pointer.Tracker {
	return e.tracker
}

// Pack returns the pack being played.
func (e *Engine) Pack() registry.Pack {
	return e.pack
}

// Update advances the engine by delta milliseconds.
func (e *Engine) Update(delta float64) {
	e.updateTransitions(delta)

	// A restart above resets the tracker, so poll afterwards.
	sig := e.tracker.Poll()
	e.updateBackground(delta)
	e.updateShake(delta)
	e.resolveHover(sig)
	e.acquireDrag(sig)
	e.releaseDrag(sig)
	e.updateShapes(delta)
	e.grid.highlight(e.dragged)
	e.updateUI(sig)

	e.tracker.Update(delta)
}

// updateTransitions runs the win and restart timers.
func (e *Engine) updateTransitions(delta float64) {
	if !e.thanks && e.tWin == 0 && !e.hasNext {
		e.elapsed += delta
	}

	if e.tWin > 0 {
		e.tWin = core.Appr(e.tWin, 0, delta)
		if e.tWin == 0 {
			e.hasNext = true
		}
	}

	if e.tRestart > 0 {
		e.tRestart = core.Appr(e.tRestart, 0, delta)
		if e.tRestart == 0 {
			e.restartLevel()
		}
		bg := e.cfg.Background
		e.bgSpeed = bg.Speed + core.Lerp(e.bgSpeed, bg.Boost, e.tRestart/1000)
	}

	e.clock += delta
}

// restartLevel reloads the current level and resets all per-level state.
func (e *Engine) restartLevel() {
	e.tRestart = 0
	e.tWin = 0
	e.tShake = 0
	e.hasNext = false
	e.hoveringNext = false
	e.dragged = nil
	e.hovered = nil
	e.committed = nil
	e.decay = [levels.SubTiles]core.Point{}
	e.elapsed = 0
	e.tracker.Reset()
	e.resetBackground()
	e.loadLevel()
}

// loadLevel builds the grid and tray of the current level index.
// An index past the end of the pack enters the thanks state.
func (e *Engine) loadLevel() {
	e.grid = Grid{}
	e.tray = nil
	e.levelName = ""

	if e.level >= e.pack.Len() {
		if !e.thanks {
			e.log.Info("pack finished", "pack", e.pack.ID(), "levels", e.pack.Len())
			e.emit(Event{Kind: EventPackFinished, Pack: e.pack.ID(), Level: e.level})
		}
		e.thanks = true
		return
	}
	e.thanks = false

	name, grid := e.pack.Level(e.level)
	lvl, err := levels.LoadString(grid, e.rng)
	if err != nil {
		// New validated the pack, so this only happens if the pack changed.
		e.log.Error("level load failed", "pack", e.pack.ID(), "level", e.level, "err", err)
		e.thanks = true
		return
	}

	e.levelName = name
	e.grid = newGrid(&lvl)
	for _, p := range lvl.Placements {
		e.tray = append(e.tray, newShape(p.Slot, p.Kind))
	}

	e.log.Debug("level loaded", "pack", e.pack.ID(), "level", e.level, "name", name, "shapes", len(e.tray))
	e.emit(Event{Kind: EventLevelStarted, Pack: e.pack.ID(), Level: e.level, Name: name})
}

func (e *Engine) emit(ev Event) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

// updateShapes advances every tray shape and the committed shape.
func (e *Engine) updateShapes(delta float64) {
	for _, s := range e.tray {
		s.update(delta, e.clock, e.cfg.Timing)
	}
	if e.committed != nil {
		if e.committed.update(delta, e.clock, e.cfg.Timing) {
			e.committed = nil
		}
	}
}

// RestartLevel starts the restart transition, as the restart button does.
// On the thanks screen it first rewinds the session to the first level.
func (e *Engine) RestartLevel() {
	if e.thanks {
		e.log.Info("session rewound", "pack", e.pack.ID())
		e.level = 0
		e.restartLevel()
	}
	e.tRestart = e.cfg.Timing.Restart
	e.log.Debug("restart", "level", e.level)
}

// NextLevel advances to the next level when the next button is available.
// It reports whether the level changed.
func (e *Engine) NextLevel() bool {
	if !e.CanAdvance() || e.tRestart > 0 {
		return false
	}
	e.level++
	e.tRestart = e.cfg.Timing.Restart
	e.log.Debug("next level", "level", e.level)
	return true
}

// CanAdvance reports whether the next button is showing.
func (e *Engine) CanAdvance() bool {
	return e.hasNext && e.tWin == 0
}

// JumpTo loads level i immediately, without a transition.
func (e *Engine) JumpTo(i int) {
	e.level = max(i, 0)
	e.restartLevel()
}

// Snapshot is a read-only summary of the engine.
type Snapshot struct {
	Pack         string
	Level        int
	LevelName    string
	Levels       int
	TrayLen      int
	Dragging     bool
	FilledCells  int
	WinTimer     float64
	RestartTimer float64
	HasNext      bool
	HoveringNext bool
	Thanks       bool
	MusicStarted bool
	Elapsed      float64
}

// State returns a summary of the engine.
func (e *Engine) State() Snapshot {
	return Snapshot{
		Pack:         e.pack.ID(),
		Level:        e.level,
		LevelName:    e.levelName,
		Levels:       e.pack.Len(),
		TrayLen:      len(e.tray),
		Dragging:     e.dragged != nil,
		FilledCells:  e.grid.FilledCount(),
		WinTimer:     e.tWin,
		RestartTimer: e.tRestart,
		HasNext:      e.hasNext,
		HoveringNext: e.hoveringNext,
		Thanks:       e.thanks,
		MusicStarted: e.musicStarted,
		Elapsed:      e.elapsed,
	}
}

// Tray returns copies of the tray shapes in slot order.
func (e *Engine) Tray() []Shape {
	out := make([]Shape, len(e.tray))
	for i, s := range e.tray {
		out[i] = *s
	}
	return out
}

// Cells returns copies of the grid cells in column-major order.
func (e *Engine) Cells() []Cell {
	return append([]Cell(nil), e.grid.cells...)
}
