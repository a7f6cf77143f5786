// Package store defines the persistence gateway the board core talks to.
// Two backends implement it: a document-style JSON file store and a
// relational GORM store. Every call is independent; there are no
// cross-entity transactional guarantees.
package store

import (
	"context"
	"errors"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

// ErrNotFound is returned when an id does not exist in the addressed set
var ErrNotFound = errors.New("store: record not found")

// TaskPatch is a partial task update. Nil fields are stripped before
// submission; the gateway never sees an "unset" value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *models.Priority
	Assignee    *string
	Creator     *string
	ProjectID   *string
	Type        *string
	Preset      *string
	StartDate   *int64
	DueDate     *int64
	CompletedAt *int64
	Images      *[]string
	Comments    *[]models.TaskComment
}

// Apply writes the non-nil patch fields onto a task. Both backends and the
// coordinator's optimistic local apply go through this single definition so
// local and persisted state cannot drift on field semantics.
func (p TaskPatch) Apply(t *models.Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Creator != nil {
		t.Creator = *p.Creator
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Preset != nil {
		t.Preset = *p.Preset
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.CompletedAt != nil {
		t.CompletedAt = *p.CompletedAt
	}
	if p.Images != nil {
		t.Images = *p.Images
	}
	if p.Comments != nil {
		t.Comments = *p.Comments
	}
}

// ProjectPatch is a partial project update
type ProjectPatch struct {
	Name  *string
	Color *string
	Order *float64
}

// Apply writes the non-nil patch fields onto a project
func (p ProjectPatch) Apply(pr *models.Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Color != nil {
		pr.Color = *p.Color
	}
	if p.Order != nil {
		pr.Order = *p.Order
	}
}

// ColumnPatch is a partial board column update
type ColumnPatch struct {
	Name  *string
	Color *string
	Icon  *string
	Order *int
}

// Apply writes the non-nil patch fields onto a column
func (p ColumnPatch) Apply(c *models.BoardColumn) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
}

// PomodoroState is the debounced timer snapshot persisted on a task.
// Nil fields leave the stored value untouched.
type PomodoroState struct {
	Status    *models.PomodoroStatus
	ElapsedMs *int64
}

// Gateway is the persistence contract the board core depends on
type Gateway interface {
	LoadTasks(ctx context.Context) ([]models.Task, error)
	LoadProjects(ctx context.Context) ([]models.Project, error)
	LoadColumns(ctx context.Context) ([]models.BoardColumn, error)
	LoadCompletedTasks(ctx context.Context) ([]models.Task, error)
	LoadDeletedTasks(ctx context.Context) ([]models.Task, error)

	// CreateTask assigns the id and createdAt stamp and returns the new id
	CreateTask(ctx context.Context, task models.Task) (string, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) error
	// DeleteTask is a hard delete of an active record, distinct from the
	// soft-delete move below
	DeleteTask(ctx context.Context, id string) error

	MoveTaskToDeleted(ctx context.Context, id string, task models.Task) error
	RestoreDeletedTask(ctx context.Context, deletedID string) (string, error)
	PermanentlyDeleteTask(ctx context.Context, deletedID string) error

	CopyTaskToCompleted(ctx context.Context, id string, task models.Task) error
	RestoreCompletedTask(ctx context.Context, completedID string) (string, error)
	PermanentlyDeleteCompletedTask(ctx context.Context, completedID string) error

	CreateProject(ctx context.Context, project models.Project) (string, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) error
	DeleteProject(ctx context.Context, id string) error
	UpdateProjectOrder(ctx context.Context, id string, order float64) error

	CreateColumn(ctx context.Context, column models.BoardColumn) (string, error)
	UpdateColumn(ctx context.Context, id string, patch ColumnPatch) error
	DeleteColumn(ctx context.Context, id string) error

	// UpdateTaskPomodoro appends the session, increments the counter and
	// clears the in-flight timer fields in one call
	UpdateTaskPomodoro(ctx context.Context, id string, session models.PomodoroSession) error
	UpdateTaskPomodoroState(ctx context.Context, id string, state PomodoroState) error
}
