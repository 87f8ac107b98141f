// Package gui provides the Ebitengine host for tilefit: a fixed-timestep
// game over the engine, mouse and touch normalization, a sprite-sheet
// surface and audio through the Ebitengine audio context.
package gui

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
	"github.com/vovakirdan/tilefit/internal/progress"
	"github.com/vovakirdan/tilefit/internal/registry"
	"github.com/vovakirdan/tilefit/internal/storage"
)

// DefaultScale is the render scale of the logical canvas.
const DefaultScale = 4

// Options configures a Game.
type Options struct {
	Pack       registry.Pack
	StartLevel int
	Config     *config.TilefitConfig // nil uses the defaults
	Seed       int64                 // 0 uses the current time
	TickRate   int                   // ticks per second, default 60
	Scale      int                   // render scale, default DefaultScale
	SheetPath  string                // PNG sprite sheet, empty generates one
	Store      *storage.Store        // nil disables persistence
	Audio      tilefit.Audio         // nil plays nothing
	Logger     *log.Logger           // nil discards
}

// Muter is implemented by audio collaborators that can be silenced.
type Muter interface {
	ToggleMute() bool
}

// Game is the ebiten.Game driving the engine.
type Game struct {
	engine  *tilefit.Engine
	surface *Surface
	input   pointerInput
	rec     *progress.Recorder
	audio   tilefit.Audio
	logger  *log.Logger
	delta   float64
	scale   int
	title   string
}

// NewGame creates the engine and its rendering resources.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tcfg := config.DefaultTilefitConfig()
	if opts.Config != nil {
		tcfg = *opts.Config
	}
	palette, err := tcfg.Theme.Palette()
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	rec := progress.NewRecorder(opts.Store, logger)
	engine, err := tilefit.New(opts.Pack, tilefit.Options{
		Config:     &tcfg,
		Palette:    &palette,
		Seed:       seed,
		Audio:      opts.Audio,
		Logger:     logger,
		StartLevel: opts.StartLevel,
		OnEvent:    rec.OnEvent,
	})
	if err != nil {
		return nil, err
	}

	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	return &Game{
		engine:  engine,
		surface: NewSurface(newSheet(opts.SheetPath, palette, logger), scale),
		rec:     rec,
		audio:   opts.Audio,
		logger:  logger,
		delta:   rt.FrameDelta(),
		scale:   scale,
	}, nil
}

// newSheet loads the sprite sheet at path, falling back to a generated one.
func newSheet(path string, p config.Palette, logger *log.Logger) *ebiten.Image {
	if path != "" {
		img, err := LoadSheet(path)
		if err == nil {
			return ebiten.NewImageFromImage(img)
		}
		logger.Warn("using generated sprite sheet", "error", err)
	}

	sheet := ebiten.NewImageFromImage(BuildSheet(p))
	thanks := rect(tilefit.SpriteThanks)
	ebitenutil.DebugPrintAt(sheet, "THANKS FOR PLAYING", thanks.Min.X+26, thanks.Min.Y+26)
	ebitenutil.DebugPrintAt(sheet, "press R to play again", thanks.Min.X+17, thanks.Min.Y+44)
	return sheet
}

// Engine returns the engine driven by the game.
func (g *Game) Engine() *tilefit.Engine {
	return g.engine
}

// Update runs one fixed tick.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.engine.RestartLevel()
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.engine.NextLevel()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if mu, ok := g.audio.(Muter); ok {
			muted := mu.ToggleMute()
			g.logger.Debug("mute toggled", "muted", muted)
		}
	}

	w, h := g.Layout(0, 0)
	g.input.apply(g.engine.Tracker(), g.input.read(), w, h)
	g.engine.Update(g.delta)

	if title := g.windowTitle(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

// windowTitle shows the pack, level and last clear.
func (g *Game) windowTitle() string {
	st := g.engine.State()
	title := fmt.Sprintf("tilefit - %s %d/%d", g.engine.Pack().Title(), st.Level+1, st.Levels)
	if st.Thanks {
		title = fmt.Sprintf("tilefit - %s", g.engine.Pack().Title())
	}
	if status := g.rec.Status(); status != "" {
		title += " - " + status
	}
	return title
}

// Draw renders the engine onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.engine.Render(g.surface, 0)
}

// Layout fixes the screen to the scaled logical canvas.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.LogicalW * g.scale, core.LogicalH * g.scale
}

// WindowSize returns the initial window size for a scale.
func WindowSize(scale int) image.Point {
	if scale <= 0 {
		scale = DefaultScale
	}
	return image.Pt(core.LogicalW*scale, core.LogicalH*scale)
}

// Run opens a window and plays until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	size := WindowSize(opts.Scale)
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(g.windowTitle())
	ebiten.SetTPS(tps)
	// The engine draws its own cursor.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	return ebiten.RunGame(g)
}
