// Package board holds the mutation coordinator: the single owner of the
// in-memory task, project and column collections. Every mutation follows
// the same protocol: validate, snapshot, apply locally, persist, and roll
// the snapshot back if persistence fails. The UI layer renders whatever
// the coordinator holds and shows at most one error message at a time.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
)

// ValidationError is a local precondition failure. Nothing was applied and
// nothing was persisted when one is returned.
type ValidationError struct {
	Action i18n.Action
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("board: validation failed: %s", e.Action)
}

// Coordinator owns the board state and coordinates optimistic mutations
// against the persistence gateway
type Coordinator struct {
	gw  store.Gateway
	log *slog.Logger
	msg *i18n.Catalog
	now func() time.Time

	tasks     []models.Task
	projects  []models.Project
	columns   []models.BoardColumn
	completed []models.Task
	deleted   []models.Task

	// errMsg is the single visible error slot; a newer failure overwrites
	// an older one
	errMsg string
}

// New returns a coordinator with empty collections
func New(gw store.Gateway, log *slog.Logger, msg *i18n.Catalog) *Coordinator {
	return &Coordinator{gw: gw, log: log, msg: msg, now: time.Now}
}

// Tasks returns the live active task set
func (c *Coordinator) Tasks() []models.Task { return c.tasks }

// Projects returns the live project set
func (c *Coordinator) Projects() []models.Project { return c.projects }

// Columns returns the live column set
func (c *Coordinator) Columns() []models.BoardColumn { return c.columns }

// CompletedTasks returns the completed history set
func (c *Coordinator) CompletedTasks() []models.Task { return c.completed }

// DeletedTasks returns the trash set
func (c *Coordinator) DeletedTasks() []models.Task { return c.deleted }

// Task looks up an active task by id
func (c *Coordinator) Task(id string) (models.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Err returns the current user-visible error message, empty if none
func (c *Coordinator) Err() string { return c.errMsg }

// DismissError clears the visible error slot
func (c *Coordinator) DismissError() { c.errMsg = "" }

func (c *Coordinator) fail(action i18n.Action, err error) {
	c.errMsg = c.msg.Message(action)
	c.log.Error("board action failed", "action", string(action), "error", err)
}

func (c *Coordinator) reject(action i18n.Action) error {
	c.errMsg = c.msg.Message(action)
	return ValidationError{Action: action}
}

// Load fetches the working sets: active tasks, projects, columns and the
// trash. Completed history is loaded lazily by LoadCompleted.
func (c *Coordinator) Load(ctx context.Context) error {
	tasks, err := c.gw.LoadTasks(ctx)
	if err != nil {
		c.fail(i18n.ActionLoad, err)
		return err
	}
	projects, err := c.gw.LoadProjects(ctx)
	if err != nil {
		c.fail(i18n.ActionLoad, err)
		return err
	}
	columns, err := c.gw.LoadColumns(ctx)
	if err != nil {
		c.fail(i18n.ActionLoad, err)
		return err
	}
	deleted, err := c.gw.LoadDeletedTasks(ctx)
	if err != nil {
		c.fail(i18n.ActionLoadDeleted, err)
		return err
	}
	c.tasks, c.projects, c.columns, c.deleted = tasks, projects, columns, deleted
	return nil
}

// LoadCompleted fetches the completed history set on demand
func (c *Coordinator) LoadCompleted(ctx context.Context) error {
	completed, err := c.gw.LoadCompletedTasks(ctx)
	if err != nil {
		c.fail(i18n.ActionLoadCompleted, err)
		return err
	}
	c.completed = completed
	return nil
}

// LoadDeleted refreshes the trash set. Stored trash records carry
// gateway-assigned ids, so the trash view reloads instead of trusting a
// locally built copy.
func (c *Coordinator) LoadDeleted(ctx context.Context) error {
	deleted, err := c.gw.LoadDeletedTasks(ctx)
	if err != nil {
		c.fail(i18n.ActionLoadDeleted, err)
		return err
	}
	c.deleted = deleted
	return nil
}

// reloadTasks replaces the active set with the canonical persisted state.
// Used where rollback would be misleading, like a half-applied reorder.
func (c *Coordinator) reloadTasks(ctx context.Context) {
	if tasks, err := c.gw.LoadTasks(ctx); err == nil {
		c.tasks = tasks
	} else {
		c.log.Error("canonical task reload failed", "error", err)
	}
}

// ValidStatus reports whether a status identifier matches a live column
func (c *Coordinator) ValidStatus(status string) bool {
	for _, col := range c.columns {
		if col.Status == status {
			return true
		}
	}
	return false
}

// CreateTask validates the draft, persists it and inserts the stored task
// at the head of the active set. Creation is not optimistic: the gateway
// owns id assignment, so the task appears only once it has an id.
func (c *Coordinator) CreateTask(ctx context.Context, draft models.Task) (string, error) {
	if draft.ProjectID == "" {
		return "", c.reject(i18n.ActionProjectRequired)
	}
	if !c.hasProject(draft.ProjectID) {
		return "", c.reject(i18n.ActionProjectNotFound)
	}
	if draft.Title == "" {
		return "", c.reject(i18n.ActionTitleRequired)
	}
	if draft.Status == "" {
		draft.Status = models.StatusTodo
	}
	if !c.ValidStatus(draft.Status) {
		return "", c.reject(i18n.ActionUnknownStatus)
	}
	if len(draft.Images) > models.MaxTaskImages {
		return "", c.reject(i18n.ActionTooManyImages)
	}
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}

	id, err := c.gw.CreateTask(ctx, draft)
	if err != nil {
		c.fail(i18n.ActionCreateTask, err)
		return "", err
	}
	draft.ID = id
	if draft.CreatedAt == 0 {
		draft.CreatedAt = c.now().UnixMilli()
	}
	c.tasks = append([]models.Task{draft}, c.tasks...)
	return id, nil
}

// UpdateTask applies a partial edit optimistically
func (c *Coordinator) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) error {
	if patch.Status != nil && !c.ValidStatus(*patch.Status) {
		return c.reject(i18n.ActionUnknownStatus)
	}
	if patch.Images != nil && len(*patch.Images) > models.MaxTaskImages {
		return c.reject(i18n.ActionTooManyImages)
	}
	return mutate(ctx, c, i18n.ActionUpdateTask, &c.tasks, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return patchTask(tasks, id, patch)
		},
		func(ctx context.Context) error {
			return c.gw.UpdateTask(ctx, id, patch)
		})
}

// SetStatus moves a task to another column (drag-drop semantics, no
// completion side effects)
func (c *Coordinator) SetStatus(ctx context.Context, id, status string) error {
	if !c.ValidStatus(status) {
		return c.reject(i18n.ActionUnknownStatus)
	}
	patch := store.TaskPatch{Status: &status}
	return mutate(ctx, c, i18n.ActionUpdateStatus, &c.tasks, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return patchTask(tasks, id, patch)
		},
		func(ctx context.Context) error {
			return c.gw.UpdateTask(ctx, id, patch)
		})
}

// CompleteTask marks a task done: a completion copy goes to the history
// collection and the active record's status flips to DONE with a
// completion stamp. The two persistence steps are independent; a failed
// history copy does not block the status flip, it only surfaces an error.
func (c *Coordinator) CompleteTask(ctx context.Context, id string) error {
	task, ok := c.Task(id)
	if !ok {
		return c.reject(i18n.ActionCompleteTask)
	}
	completedAt := c.now().UnixMilli()

	rec := task.Clone()
	rec.Status = models.StatusDone
	rec.CompletedAt = completedAt
	if err := c.gw.CopyTaskToCompleted(ctx, id, rec); err != nil {
		c.fail(i18n.ActionCompleteTask, err)
	}

	status := models.StatusDone
	patch := store.TaskPatch{Status: &status, CompletedAt: &completedAt}
	return mutate(ctx, c, i18n.ActionCompleteTask, &c.tasks, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return patchTask(tasks, id, patch)
		},
		func(ctx context.Context) error {
			return c.gw.UpdateTask(ctx, id, patch)
		})
}

// ReopenTask sends a done task back to TODO in place
func (c *Coordinator) ReopenTask(ctx context.Context, id string) error {
	return c.SetStatus(ctx, id, models.StatusTodo)
}

// SoftDeleteTask moves an active task to the trash. On success the caller
// must also drop the task's timer engine.
func (c *Coordinator) SoftDeleteTask(ctx context.Context, id string) error {
	task, ok := c.Task(id)
	if !ok {
		return c.reject(i18n.ActionDeleteTask)
	}
	if err := mutate(ctx, c, i18n.ActionDeleteTask, &c.tasks, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return removeTask(tasks, id)
		},
		func(ctx context.Context) error {
			return c.gw.MoveTaskToDeleted(ctx, id, task)
		}); err != nil {
		return err
	}
	// the stored trash record's id is assigned by the gateway, so the
	// local copy comes from a reload, never from stamping the active task
	if deleted, err := c.gw.LoadDeletedTasks(ctx); err == nil {
		c.deleted = deleted
	} else {
		c.log.Error("trash reload failed", "error", err)
	}
	return nil
}

// RestoreDeletedTask brings a trashed task back into the active set under a
// fresh identity. The active set is reloaded from the gateway because the
// restored record's id and stamps are assigned there.
func (c *Coordinator) RestoreDeletedTask(ctx context.Context, deletedID string) error {
	if _, err := c.gw.RestoreDeletedTask(ctx, deletedID); err != nil {
		c.fail(i18n.ActionRestoreTask, err)
		return err
	}
	c.deleted = removeTask(c.deleted, deletedID)
	c.reloadTasks(ctx)
	return nil
}

// PermanentlyDeleteTask removes a record from the trash for good
func (c *Coordinator) PermanentlyDeleteTask(ctx context.Context, deletedID string) error {
	return mutate(ctx, c, i18n.ActionPermanentDelete, &c.deleted, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return removeTask(tasks, deletedID)
		},
		func(ctx context.Context) error {
			return c.gw.PermanentlyDeleteTask(ctx, deletedID)
		})
}

// RestoreCompletedTask reactivates a task from the completed history
func (c *Coordinator) RestoreCompletedTask(ctx context.Context, completedID string) error {
	if _, err := c.gw.RestoreCompletedTask(ctx, completedID); err != nil {
		c.fail(i18n.ActionRestoreTask, err)
		return err
	}
	c.completed = removeTask(c.completed, completedID)
	c.reloadTasks(ctx)
	return nil
}

// PermanentlyDeleteCompletedTask removes a record from the completed
// history for good
func (c *Coordinator) PermanentlyDeleteCompletedTask(ctx context.Context, completedID string) error {
	return mutate(ctx, c, i18n.ActionPermanentDelete, &c.completed, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return removeTask(tasks, completedID)
		},
		func(ctx context.Context) error {
			return c.gw.PermanentlyDeleteCompletedTask(ctx, completedID)
		})
}

// AddComment appends a comment to a task. Comments are append-only; the
// patch always carries the full extended slice.
func (c *Coordinator) AddComment(ctx context.Context, taskID, text, author string) error {
	task, ok := c.Task(taskID)
	if !ok {
		return c.reject(i18n.ActionSaveComment)
	}
	comment := models.TaskComment{
		ID:        fmt.Sprintf("comment-%d", c.now().UnixNano()),
		Text:      text,
		Author:    author,
		CreatedAt: c.now().UnixMilli(),
	}
	comments := append(append([]models.TaskComment(nil), task.Comments...), comment)
	patch := store.TaskPatch{Comments: &comments}
	return mutate(ctx, c, i18n.ActionSaveComment, &c.tasks, models.CloneTasks,
		func(tasks []models.Task) []models.Task {
			return patchTask(tasks, taskID, patch)
		},
		func(ctx context.Context) error {
			return c.gw.UpdateTask(ctx, taskID, patch)
		})
}

// RecordSession appends a finished pomodoro session to its task, bumps the
// counter and clears the in-flight timer fields. The local append is kept
// even when persistence fails; losing a finished session to a transient
// write error would be worse than a dirty counter.
func (c *Coordinator) RecordSession(ctx context.Context, session models.PomodoroSession) {
	for i := range c.tasks {
		if c.tasks[i].ID != session.TaskID {
			continue
		}
		c.tasks[i].Sessions = append(c.tasks[i].Sessions, session)
		if session.Type == "work" && session.Completed {
			c.tasks[i].TotalPomodoros++
		}
		c.tasks[i].ElapsedMs = 0
		c.tasks[i].Pomodoro = models.PomodoroIdle
		break
	}
	if err := c.gw.UpdateTaskPomodoro(ctx, session.TaskID, session); err != nil {
		c.fail(i18n.ActionSaveSession, err)
	}
}

// SaveTimerState persists a debounced {status, elapsed} timer snapshot.
// Failure here is degraded-but-usable: the in-memory timer keeps running,
// so only rehydration fidelity is at stake. Logged, never surfaced.
func (c *Coordinator) SaveTimerState(ctx context.Context, taskID string, status models.PomodoroStatus, elapsedMs int64) {
	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			c.tasks[i].Pomodoro = status
			c.tasks[i].ElapsedMs = elapsedMs
			break
		}
	}
	state := store.PomodoroState{Status: &status, ElapsedMs: &elapsedMs}
	if err := c.gw.UpdateTaskPomodoroState(ctx, taskID, state); err != nil {
		c.log.Warn("timer state snapshot failed", "task", taskID, "error", err)
	}
}

func (c *Coordinator) hasProject(id string) bool {
	for _, p := range c.projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

// patchTask returns tasks with the patch applied to the matching id
func patchTask(tasks []models.Task, id string, patch store.TaskPatch) []models.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			patch.Apply(&tasks[i])
			break
		}
	}
	return tasks
}

// removeTask returns tasks without the matching id
func removeTask(tasks []models.Task, id string) []models.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
