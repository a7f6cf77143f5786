package pomodoro

import (
	"time"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

// TimerSet owns one engine per task id. Holding the map here (instead of
// inside the UI state tree) guarantees a single live timer per task no
// matter how often cards remount across view-mode switches.
type TimerSet struct {
	cfg     Config
	engines map[string]*Engine
}

// NewTimerSet returns an empty timer registry
func NewTimerSet(cfg Config) *TimerSet {
	return &TimerSet{cfg: cfg, engines: make(map[string]*Engine)}
}

// Ensure returns the engine for a task, rehydrating it from the task's
// persisted timer fields on first access
func (ts *TimerSet) Ensure(task models.Task) *Engine {
	if e, ok := ts.engines[task.ID]; ok {
		return e
	}
	cfg := ts.cfg
	if d := presetDuration(task.Preset); d > 0 {
		cfg.WorkDuration = d
	}
	e := Rehydrate(task.ID, cfg, task.Pomodoro, task.ElapsedMs)
	ts.engines[task.ID] = e
	return e
}

// Resume recreates engines for every task whose persisted timer state was
// still live, so a running or break timer keeps ticking after a restart
// instead of waiting for its card to be touched.
func (ts *TimerSet) Resume(tasks []models.Task) {
	for _, t := range tasks {
		if t.Pomodoro == models.PomodoroRunning || t.Pomodoro == models.PomodoroBreak {
			ts.Ensure(t)
		}
	}
}

// SoundEnabled reports whether session completions should be audible
func (ts *TimerSet) SoundEnabled() bool { return ts.cfg.SoundEnabled }

// Get returns the engine for a task id if one exists
func (ts *TimerSet) Get(taskID string) (*Engine, bool) {
	e, ok := ts.engines[taskID]
	return e, ok
}

// Remove tears down a task's engine (card unmounted, task deleted)
func (ts *TimerSet) Remove(taskID string) {
	delete(ts.engines, taskID)
}

// AnyRunning reports whether at least one engine needs tick delivery
func (ts *TimerSet) AnyRunning() bool {
	for _, e := range ts.engines {
		if e.Running() {
			return true
		}
	}
	return false
}

// TickAll advances every running engine by delta and collects the
// resulting updates and completed sessions
func (ts *TimerSet) TickAll(delta time.Duration) ([]Update, []models.PomodoroSession) {
	var updates []Update
	var sessions []models.PomodoroSession
	for _, e := range ts.engines {
		if !e.Running() {
			continue
		}
		u, s := e.Tick(delta)
		updates = append(updates, u)
		if s != nil {
			sessions = append(sessions, *s)
		}
	}
	return updates, sessions
}

// presetDuration maps a tracking-preset identifier to its work duration
func presetDuration(preset string) time.Duration {
	switch preset {
	case "POMODORO_25":
		return 25 * time.Minute
	case "DEEP_50":
		return 50 * time.Minute
	case "STRATEGIC_90":
		return 90 * time.Minute
	case "SHORT_BREAK":
		return 5 * time.Minute
	case "LONG_BREAK":
		return 15 * time.Minute
	}
	return 0
}
