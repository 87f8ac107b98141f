package tilefit

import (
	"slices"

	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
	"github.com/vovakirdan/tilefit/internal/pointer"
)

// cursorBox is the hit area around a pointer position.
func cursorBox(p core.Point) core.Box {
	return core.NewBox(p.X-2, p.Y-2, 9, 9)
}

// shapeAt returns the shape under p. The dragged shape wins over tray
// shapes; otherwise the first in tray order.
func (e *Engine) shapeAt(p core.Point) *Shape {
	cb := cursorBox(p)
	if e.dragged != nil && e.dragged.hit(cb) {
		return e.dragged
	}
	for _, s := range e.tray {
		if s.hit(cb) {
			return s
		}
	}
	return nil
}

// resolveHover moves the dragged shape with the pointer, or marks the tray
// shape under the pointer as hovered.
func (e *Engine) resolveHover(sig pointer.Signals) {
	e.hovered = nil
	if !sig.Hovering.Valid {
		return
	}
	p := sig.Hovering.Pos

	if e.dragged != nil {
		e.dragged.Hovering = e.cfg.Timing.Hover
		for k := range e.dragged.Tiles {
			e.dragged.Tiles[k].Pos = p.Add(e.decay[k])
		}
		return
	}

	cb := cursorBox(p)
	for _, s := range e.tray {
		if s.hit(cb) {
			e.hovered = s
			s.Hovering = e.cfg.Timing.Hover
			return
		}
	}
}

// acquireDrag starts dragging the shape under a held pointer.
func (e *Engine) acquireDrag(sig pointer.Signals) {
	if !sig.Down.Valid {
		return
	}

	if !e.musicStarted {
		e.musicStarted = true
		e.audio.Play(CueAmbientLoop, true, e.cfg.Audio.MusicVolume)
	}

	down := sig.Down.Pos
	s := e.shapeAt(down)
	if s == nil || s == e.dragged {
		return
	}

	if e.dragged != nil {
		e.cancel(e.dragged)
	}
	e.dragged = s
	s.Cancel = 0
	for k := range s.Tiles {
		e.decay[k] = s.Tiles[k].Pos.Sub(down)
	}
	e.audio.Play(CueDragPickup, false, e.cfg.Audio.SFXVolume)
}

// releaseDrag drops the dragged shape once the pointer is no longer held.
func (e *Engine) releaseDrag(sig pointer.Signals) {
	if sig.Down.Valid || e.dragged == nil {
		return
	}

	if !e.commit(e.dragged) {
		e.cancel(e.dragged)
	}
	e.dragged = nil

	if len(e.tray) == 0 {
		e.tWin = e.cfg.Timing.Win
		if e.tWin <= 0 {
			e.tWin = 0
			e.hasNext = true
		}
		e.audio.Play(CueWin, false, e.cfg.Audio.SFXVolume)
		e.log.Info("level cleared", "pack", e.pack.ID(), "level", e.level, "name", e.levelName, "elapsed_ms", e.elapsed)
		e.emit(Event{Kind: EventLevelCleared, Pack: e.pack.ID(), Level: e.level, Name: e.levelName, Elapsed: e.elapsed})
	}
}

// cancel sends s back to its tray slot.
func (e *Engine) cancel(s *Shape) {
	s.Cancel = e.cfg.Timing.Cancel
	e.decay = [levels.SubTiles]core.Point{}
	if s.Cancel <= 0 {
		for k := range s.Tiles {
			s.Tiles[k].Pos = s.Tiles[k].Home
		}
	}
	e.audio.Play(CueDropCancel, false, e.cfg.Audio.SFXVolume)
}

// commit places s on the accepting cells. It fails unless s is in the tray
// and the accepting cells match its filled sub-tiles one for one.
func (e *Engine) commit(s *Shape) bool {
	idx := slices.Index(e.tray, s)
	if idx < 0 {
		return false
	}

	cells := e.grid.accepting()
	if len(cells) != s.Cells() {
		return false
	}

	for _, c := range cells {
		c.Filled = true
	}
	e.tray = slices.Delete(e.tray, idx, idx+1)

	e.committed = s
	s.Commit = e.cfg.Timing.Commit
	if s.Commit <= 0 {
		e.committed = nil
	}
	e.decay = [levels.SubTiles]core.Point{}
	e.tShake = e.cfg.Timing.Shake

	e.audio.Play(CueDropCommit, false, e.cfg.Audio.SFXVolume)
	e.log.Debug("shape committed", "slot", s.Slot, "kind", s.Kind.Name(), "left", len(e.tray))
	return true
}
