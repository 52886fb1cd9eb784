// Package timer provides activity timing for CLI progress reporting.
//
// A Timer tracks the total runtime of a command and the runtime of the
// current stage. Success notifications consume both values via
// [Timer.GetTiming].
package timer

import (
	"sync"
	"time"
)

// Timer measures total and per-stage elapsed time.
type Timer interface {
	// Start begins timing. Calling Start again resets the timer.
	Start()

	// NewStage marks the beginning of a new stage, resetting the stage clock.
	NewStage()

	// GetTiming returns the total elapsed time and the elapsed time of the
	// current stage.
	GetTiming() (total, stage time.Duration)
}

// New creates a Timer backed by the wall clock.
func New() Timer {
	return &realTimer{}
}

type realTimer struct {
	mu         sync.Mutex
	start      time.Time
	stageStart time.Time
}

func (t *realTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.start = now
	t.stageStart = now
}

func (t *realTimer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stageStart = time.Now()
}

func (t *realTimer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	now := time.Now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
