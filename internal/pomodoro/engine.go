// Package pomodoro implements the per-task focus timer as a pure state
// machine. The engine never owns a real timer: the caller injects elapsed
// time through Tick, which makes the transition logic trivially testable
// and guarantees a single tick source per task.
//
// Convention: the engine counts up. ElapsedMs grows from 0 toward the
// configured duration; completion fires at the boundary and resets the
// elapsed reading to 0.
package pomodoro

import (
	"time"

	"github.com/google/uuid"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

// Config holds the timer durations and behavior flags
type Config struct {
	WorkDuration   time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	AutoStartBreak bool
	SoundEnabled   bool
}

// DefaultConfig returns the classic 25/5/15 pomodoro setup
func DefaultConfig() Config {
	return Config{
		WorkDuration: 25 * time.Minute,
		ShortBreak:   5 * time.Minute,
		LongBreak:    15 * time.Minute,
		SoundEnabled: true,
	}
}

// Update is the {status, elapsed} snapshot handed to the owner on every
// transition and tick, for debounced persistence
type Update struct {
	TaskID    string
	Status    models.PomodoroStatus
	ElapsedMs int64
}

// Engine is the timer state machine for one task
type Engine struct {
	taskID    string
	work      time.Duration
	brk       time.Duration
	autoBreak bool
	status    models.PomodoroStatus
	elapsed   time.Duration
	// pausedFrom remembers the interval kind a pause interrupted, so
	// resuming a paused break returns to break instead of work
	pausedFrom models.PomodoroStatus
	now        func() time.Time
}

// New returns an idle engine with zero elapsed time
func New(taskID string, cfg Config) *Engine {
	return &Engine{
		taskID:    taskID,
		work:      cfg.WorkDuration,
		brk:       cfg.ShortBreak,
		autoBreak: cfg.AutoStartBreak,
		status:    models.PomodoroIdle,
		now:       time.Now,
	}
}

// Rehydrate builds an engine from a persisted snapshot so a timer survives
// reloads and view switches. A snapshot taken while running resumes from
// the persisted elapsed value; no wall-clock catch-up is performed.
func Rehydrate(taskID string, cfg Config, status models.PomodoroStatus, elapsedMs int64) *Engine {
	e := New(taskID, cfg)
	if status != "" {
		e.status = status
	}
	if elapsedMs > 0 {
		e.elapsed = time.Duration(elapsedMs) * time.Millisecond
	}
	return e
}

// Status returns the current timer state
func (e *Engine) Status() models.PomodoroStatus { return e.status }

// ElapsedMs returns the current count-up reading in milliseconds
func (e *Engine) ElapsedMs() int64 { return e.elapsed.Milliseconds() }

// Running reports whether the engine advances on Tick
func (e *Engine) Running() bool {
	return e.status == models.PomodoroRunning || e.status == models.PomodoroBreak
}

// WorkDuration returns the configured work interval
func (e *Engine) WorkDuration() time.Duration { return e.work }

// Start moves idle or paused to running. Resuming a paused break returns
// to break. Starting while already running is a no-op transition; the
// caller's single tick source is not duplicated.
func (e *Engine) Start() Update {
	switch {
	case e.status == models.PomodoroBreak:
	case e.status == models.PomodoroPaused && e.pausedFrom == models.PomodoroBreak:
		e.status = models.PomodoroBreak
	default:
		e.status = models.PomodoroRunning
	}
	return e.update()
}

// StartBreak begins a break interval from idle
func (e *Engine) StartBreak() Update {
	e.status = models.PomodoroBreak
	e.elapsed = 0
	e.pausedFrom = ""
	return e.update()
}

// Pause freezes the current reading
func (e *Engine) Pause() Update {
	if e.Running() {
		e.pausedFrom = e.status
		e.status = models.PomodoroPaused
	}
	return e.update()
}

// Reset cancels the in-flight interval without recording a session
func (e *Engine) Reset() Update {
	e.status = models.PomodoroIdle
	e.elapsed = 0
	e.pausedFrom = ""
	return e.update()
}

// Tick advances a running engine by delta. When the configured duration
// boundary is reached it synthesizes exactly one completed session and
// returns it for persistence; otherwise the session is nil. A finished
// work interval rolls into a break when auto-start-break is on, anything
// else resets to idle.
func (e *Engine) Tick(delta time.Duration) (Update, *models.PomodoroSession) {
	if !e.Running() {
		return e.update(), nil
	}

	duration := e.work
	sessionType := "work"
	if e.status == models.PomodoroBreak {
		duration = e.brk
		sessionType = "break"
	}

	e.elapsed += delta
	if e.elapsed < duration {
		return e.update(), nil
	}

	now := e.now()
	session := &models.PomodoroSession{
		ID:        uuid.NewString(),
		TaskID:    e.taskID,
		StartTime: now.Add(-duration).UnixMilli(),
		EndTime:   now.UnixMilli(),
		Duration:  duration.Milliseconds(),
		Completed: true,
		Type:      sessionType,
		Date:      now.Format("2006-01-02"),
	}

	if sessionType == "work" && e.autoBreak {
		e.status = models.PomodoroBreak
	} else {
		e.status = models.PomodoroIdle
	}
	e.elapsed = 0
	e.pausedFrom = ""
	return e.update(), session
}

func (e *Engine) update() Update {
	return Update{TaskID: e.taskID, Status: e.status, ElapsedMs: e.ElapsedMs()}
}
