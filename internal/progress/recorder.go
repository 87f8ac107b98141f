// Package progress records engine events into the store: completions with
// their times and the level to resume a pack from.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilefit/internal/games/tilefit"
	"github.com/vovakirdan/tilefit/internal/storage"
)

// Recorder persists engine events and keeps a short status for the host.
// A nil store keeps the status without saving anything.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
	status string
	best   time.Duration
}

// NewRecorder creates a recorder. A nil logger discards.
func NewRecorder(store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// Status returns the last clear message, empty while a level is played.
func (r *Recorder) Status() string {
	return r.status
}

// Best returns the best time of the current level, 0 if never cleared.
func (r *Recorder) Best() time.Duration {
	return r.best
}

// OnEvent handles one engine event. It is passed as Options.OnEvent.
func (r *Recorder) OnEvent(ev tilefit.Event) {
	switch ev.Kind {
	case tilefit.EventLevelStarted:
		r.status = ""
		r.best = 0
		if r.store != nil {
			if best, ok, err := r.store.BestTime(ev.Pack, ev.Level); err == nil && ok {
				r.best = best
			}
		}

	case tilefit.EventLevelCleared:
		elapsed := time.Duration(ev.Elapsed * float64(time.Millisecond))
		r.status = "cleared in " + FormatElapsed(elapsed)
		if r.best == 0 || elapsed < r.best {
			if r.best != 0 {
				r.status += " (new best)"
			}
			r.best = elapsed
		}
		if r.store == nil {
			return
		}
		if _, err := r.store.SaveCompletion(storage.Completion{
			PackID:    ev.Pack,
			Level:     ev.Level,
			LevelName: ev.Name,
			Elapsed:   elapsed,
		}); err != nil {
			r.logger.Warn("could not save completion", "error", err)
		}
		if err := r.store.SaveProgress(ev.Pack, ev.Level+1); err != nil {
			r.logger.Warn("could not save progress", "error", err)
		}

	case tilefit.EventPackFinished:
		r.status = "pack finished"
		if r.store != nil {
			if err := r.store.SaveProgress(ev.Pack, 0); err != nil {
				r.logger.Warn("could not save progress", "error", err)
			}
		}
	}
}

// FormatElapsed renders a duration as m:ss.t.
func FormatElapsed(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	tenths := int((d % time.Second) / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", mins, secs, tenths)
}
