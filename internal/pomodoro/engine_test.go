package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

func testConfig() Config {
	return Config{
		WorkDuration: 2 * time.Second,
		ShortBreak:   1 * time.Second,
		LongBreak:    3 * time.Second,
	}
}

func TestEngineStartPauseResume(t *testing.T) {
	e := New("t1", testConfig())
	assert.Equal(t, models.PomodoroIdle, e.Status())

	u := e.Start()
	assert.Equal(t, models.PomodoroRunning, u.Status)
	assert.True(t, e.Running())

	u, session := e.Tick(time.Second)
	require.Nil(t, session)
	assert.Equal(t, int64(1000), u.ElapsedMs)

	u = e.Pause()
	assert.Equal(t, models.PomodoroPaused, u.Status)
	assert.False(t, e.Running())

	// Paused engines hold their reading through ticks
	u, session = e.Tick(time.Second)
	require.Nil(t, session)
	assert.Equal(t, int64(1000), u.ElapsedMs)

	u = e.Start()
	assert.Equal(t, models.PomodoroRunning, u.Status)
	assert.Equal(t, int64(1000), e.ElapsedMs())
}

func TestEngineCompletesAtBoundary(t *testing.T) {
	e := New("t1", testConfig())
	e.now = func() time.Time { return time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC) }
	e.Start()

	_, session := e.Tick(time.Second)
	require.Nil(t, session)

	u, session := e.Tick(time.Second)
	require.NotNil(t, session)

	assert.Equal(t, "t1", session.TaskID)
	assert.Equal(t, "work", session.Type)
	assert.True(t, session.Completed)
	assert.Equal(t, int64(2000), session.Duration)
	assert.Equal(t, "2026-03-10", session.Date)
	assert.Equal(t, session.EndTime-session.StartTime, session.Duration)
	assert.NotEmpty(t, session.ID)

	// Boundary resets the engine
	assert.Equal(t, models.PomodoroIdle, u.Status)
	assert.Equal(t, int64(0), u.ElapsedMs)

	// No second session for the same interval
	_, session = e.Tick(time.Second)
	assert.Nil(t, session)
}

func TestEngineBreakSession(t *testing.T) {
	e := New("t1", testConfig())
	u := e.StartBreak()
	assert.Equal(t, models.PomodoroBreak, u.Status)

	_, session := e.Tick(time.Second)
	require.NotNil(t, session)
	assert.Equal(t, "break", session.Type)
	assert.Equal(t, int64(1000), session.Duration)
	assert.Equal(t, models.PomodoroIdle, e.Status())
}

func TestEngineStartDuringBreakIsNoop(t *testing.T) {
	e := New("t1", testConfig())
	e.StartBreak()
	u := e.Start()
	assert.Equal(t, models.PomodoroBreak, u.Status)
}

func TestEngineReset(t *testing.T) {
	e := New("t1", testConfig())
	e.Start()
	e.Tick(time.Second)

	u := e.Reset()
	assert.Equal(t, models.PomodoroIdle, u.Status)
	assert.Equal(t, int64(0), u.ElapsedMs)
}

func TestRehydrateResumesFromSnapshot(t *testing.T) {
	e := Rehydrate("t1", testConfig(), models.PomodoroPaused, 1500)
	assert.Equal(t, models.PomodoroPaused, e.Status())
	assert.Equal(t, int64(1500), e.ElapsedMs())

	// Resume and finish the remaining half second
	e.Start()
	_, session := e.Tick(500 * time.Millisecond)
	require.NotNil(t, session)
}

func TestRehydrateEmptySnapshot(t *testing.T) {
	e := Rehydrate("t1", testConfig(), "", 0)
	assert.Equal(t, models.PomodoroIdle, e.Status())
	assert.Equal(t, int64(0), e.ElapsedMs())
}

func TestTimerSetOneEnginePerTask(t *testing.T) {
	ts := NewTimerSet(testConfig())
	task := models.Task{ID: "t1", Pomodoro: models.PomodoroRunning, ElapsedMs: 700}

	e1 := ts.Ensure(task)
	assert.Equal(t, int64(700), e1.ElapsedMs())

	// A remount must not reset the live engine
	e1.Tick(time.Second)
	e2 := ts.Ensure(task)
	assert.Same(t, e1, e2)
	assert.Equal(t, int64(1700), e2.ElapsedMs())
}

func TestTimerSetPresetOverridesWorkDuration(t *testing.T) {
	ts := NewTimerSet(testConfig())
	e := ts.Ensure(models.Task{ID: "t1", Preset: "DEEP_50"})
	assert.Equal(t, 50*time.Minute, e.WorkDuration())
}

func TestTimerSetTickAll(t *testing.T) {
	ts := NewTimerSet(testConfig())
	running := ts.Ensure(models.Task{ID: "run"})
	running.Start()
	ts.Ensure(models.Task{ID: "idle"})

	assert.True(t, ts.AnyRunning())

	updates, sessions := ts.TickAll(time.Second)
	require.Len(t, updates, 1)
	assert.Equal(t, "run", updates[0].TaskID)
	assert.Empty(t, sessions)

	updates, sessions = ts.TickAll(time.Second)
	require.Len(t, updates, 1)
	require.Len(t, sessions, 1)
	assert.Equal(t, "run", sessions[0].TaskID)
	assert.False(t, ts.AnyRunning())
}

func TestTimerSetRemove(t *testing.T) {
	ts := NewTimerSet(testConfig())
	ts.Ensure(models.Task{ID: "t1"})
	ts.Remove("t1")
	_, ok := ts.Get("t1")
	assert.False(t, ok)
}

func TestEngineAutoStartBreakRollsIntoBreak(t *testing.T) {
	cfg := testConfig()
	cfg.AutoStartBreak = true
	e := New("t1", cfg)
	e.Start()

	e.Tick(time.Second)
	u, session := e.Tick(time.Second)
	require.NotNil(t, session)
	assert.Equal(t, "work", session.Type)

	// The finished work interval rolls straight into a break
	assert.Equal(t, models.PomodoroBreak, u.Status)
	assert.Equal(t, int64(0), u.ElapsedMs)

	_, session = e.Tick(time.Second)
	require.NotNil(t, session)
	assert.Equal(t, "break", session.Type)
	assert.Equal(t, models.PomodoroIdle, e.Status())
}

func TestEnginePausedBreakResumesAsBreak(t *testing.T) {
	e := New("t1", testConfig())
	e.StartBreak()
	e.Tick(400 * time.Millisecond)

	u := e.Pause()
	assert.Equal(t, models.PomodoroPaused, u.Status)

	u = e.Start()
	assert.Equal(t, models.PomodoroBreak, u.Status)
	assert.Equal(t, int64(400), u.ElapsedMs)

	_, session := e.Tick(600 * time.Millisecond)
	require.NotNil(t, session)
	assert.Equal(t, "break", session.Type)
}

func TestEnginePausedWorkStillResumesAsWork(t *testing.T) {
	e := New("t1", testConfig())
	e.Start()
	e.Tick(time.Second)
	e.Pause()

	u := e.Start()
	assert.Equal(t, models.PomodoroRunning, u.Status)
}

func TestTimerSetResumeRestoresLiveTimers(t *testing.T) {
	cfg := testConfig()
	cfg.SoundEnabled = true
	ts := NewTimerSet(cfg)
	assert.True(t, ts.SoundEnabled())

	ts.Resume([]models.Task{
		{ID: "t1", Pomodoro: models.PomodoroRunning, ElapsedMs: 1000},
		{ID: "t2", Pomodoro: models.PomodoroBreak, ElapsedMs: 200},
		{ID: "t3", Pomodoro: models.PomodoroIdle},
		{ID: "t4", Pomodoro: models.PomodoroPaused, ElapsedMs: 500},
	})

	// Only timers that were mid-interval come back; idle and paused tasks
	// wait for user input
	_, ok := ts.Get("t3")
	assert.False(t, ok)
	_, ok = ts.Get("t4")
	assert.False(t, ok)

	updates, sessions := ts.TickAll(500 * time.Millisecond)
	assert.Empty(t, sessions)
	require.Len(t, updates, 2)
	for _, u := range updates {
		switch u.TaskID {
		case "t1":
			assert.Equal(t, models.PomodoroRunning, u.Status)
			assert.Equal(t, int64(1500), u.ElapsedMs)
		case "t2":
			assert.Equal(t, models.PomodoroBreak, u.Status)
			assert.Equal(t, int64(700), u.ElapsedMs)
		default:
			t.Fatalf("unexpected engine for %s", u.TaskID)
		}
	}
}
