// Package file implements the document-store style persistence backend:
// one JSON file per collection, uuid document ids.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
)

const (
	tasksFile     = "tasks.json"
	completedFile = "completed_tasks.json"
	deletedFile   = "deleted_tasks.json"
	projectsFile  = "projects.json"
	columnsFile   = "columns.json"
)

// Store is a JSON-file document store
type Store struct {
	mu      sync.Mutex
	dataDir string
}

var _ store.Gateway = (*Store)(nil)

// New creates the data directory and returns a file store
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

func readCollection[T any](s *Store, name string) ([]T, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// writeCollection writes atomically via temp file + rename
func writeCollection[T any](s *Store, name string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(name))
}

// LoadTasks returns the active task set, newest first
func (s *Store) LoadTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(tasks)
	return tasks, nil
}

// LoadCompletedTasks returns the completed-set copies
func (s *Store) LoadCompletedTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[models.Task](s, completedFile)
}

// LoadDeletedTasks returns the deleted-set records
func (s *Store) LoadDeletedTasks(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[models.Task](s, deletedFile)
}

// LoadProjects returns all projects
func (s *Store) LoadProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[models.Project](s, projectsFile)
}

// LoadColumns returns the board columns, seeding the defaults on first run
func (s *Store) LoadColumns(ctx context.Context) ([]models.BoardColumn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, err := readCollection[models.BoardColumn](s, columnsFile)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		cols = models.DefaultColumns()
		if err := writeCollection(s, columnsFile, cols); err != nil {
			return nil, err
		}
	}
	return cols, nil
}

// CreateTask assigns a fresh id and createdAt and prepends the task
func (s *Store) CreateTask(ctx context.Context, task models.Task) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return "", err
	}
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UnixMilli()
	tasks = append([]models.Task{task}, tasks...)
	if err := writeCollection(s, tasksFile, tasks); err != nil {
		return "", err
	}
	return task.ID, nil
}

// UpdateTask applies a partial update to an active task
func (s *Store) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			patch.Apply(&tasks[i])
			return writeCollection(s, tasksFile, tasks)
		}
	}
	return store.ErrNotFound
}

// DeleteTask hard-deletes an active task
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.removeFrom(tasksFile, id)
}

// MoveTaskToDeleted stamps deletedAt/originalId and moves the record from
// the active set to the deleted set
func (s *Store) MoveTaskToDeleted(ctx context.Context, id string, task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := task.Clone()
	rec.ID = uuid.NewString()
	rec.OriginalID = id
	rec.DeletedAt = time.Now().UnixMilli()

	deleted, err := readCollection[models.Task](s, deletedFile)
	if err != nil {
		return err
	}
	if err := writeCollection(s, deletedFile, append(deleted, rec)); err != nil {
		return err
	}

	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return err
	}
	return writeCollection(s, tasksFile, removeByID(tasks, id))
}

// RestoreDeletedTask re-creates an active task from a deleted record and
// removes the record. The restored task gets a new id and a fresh createdAt.
func (s *Store) RestoreDeletedTask(ctx context.Context, deletedID string) (string, error) {
	return s.restoreFrom(deletedFile, deletedID, "")
}

// PermanentlyDeleteTask removes a record from the deleted set irreversibly
func (s *Store) PermanentlyDeleteTask(ctx context.Context, deletedID string) error {
	return s.removeFrom(deletedFile, deletedID)
}

// CopyTaskToCompleted copies the task into the completed set, leaving the
// active record in place
func (s *Store) CopyTaskToCompleted(ctx context.Context, id string, task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := task.Clone()
	rec.ID = uuid.NewString()
	rec.OriginalID = id
	rec.CompletedAt = time.Now().UnixMilli()
	rec.Status = models.StatusDone

	completed, err := readCollection[models.Task](s, completedFile)
	if err != nil {
		return err
	}
	return writeCollection(s, completedFile, append(completed, rec))
}

// RestoreCompletedTask re-creates an active task from a completed record
// and removes the record. The restored task returns to the TODO column.
func (s *Store) RestoreCompletedTask(ctx context.Context, completedID string) (string, error) {
	return s.restoreFrom(completedFile, completedID, models.StatusTodo)
}

// PermanentlyDeleteCompletedTask removes a completed record irreversibly
func (s *Store) PermanentlyDeleteCompletedTask(ctx context.Context, completedID string) error {
	return s.removeFrom(completedFile, completedID)
}

// CreateProject assigns an id and appends the project
func (s *Store) CreateProject(ctx context.Context, project models.Project) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects, err := readCollection[models.Project](s, projectsFile)
	if err != nil {
		return "", err
	}
	project.ID = uuid.NewString()
	if err := writeCollection(s, projectsFile, append(projects, project)); err != nil {
		return "", err
	}
	return project.ID, nil
}

// UpdateProject applies a partial update to a project
func (s *Store) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects, err := readCollection[models.Project](s, projectsFile)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == id {
			patch.Apply(&projects[i])
			return writeCollection(s, projectsFile, projects)
		}
	}
	return store.ErrNotFound
}

// DeleteProject removes the project record only; referencing tasks are left
// in place (no cascade at the storage layer)
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects, err := readCollection[models.Project](s, projectsFile)
	if err != nil {
		return err
	}
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return writeCollection(s, projectsFile, kept)
}

// UpdateProjectOrder persists a single project's order value
func (s *Store) UpdateProjectOrder(ctx context.Context, id string, order float64) error {
	return s.UpdateProject(ctx, id, store.ProjectPatch{Order: &order})
}

// CreateColumn assigns an id and createdAt and appends the column
func (s *Store) CreateColumn(ctx context.Context, column models.BoardColumn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, err := readCollection[models.BoardColumn](s, columnsFile)
	if err != nil {
		return "", err
	}
	column.ID = uuid.NewString()
	column.CreatedAt = time.Now().UnixMilli()
	if err := writeCollection(s, columnsFile, append(cols, column)); err != nil {
		return "", err
	}
	return column.ID, nil
}

// UpdateColumn applies a partial update to a column
func (s *Store) UpdateColumn(ctx context.Context, id string, patch store.ColumnPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, err := readCollection[models.BoardColumn](s, columnsFile)
	if err != nil {
		return err
	}
	for i := range cols {
		if cols[i].ID == id {
			patch.Apply(&cols[i])
			return writeCollection(s, columnsFile, cols)
		}
	}
	return store.ErrNotFound
}

// DeleteColumn removes a column record. Task reassignment is the
// coordinator's responsibility, not the store's.
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols, err := readCollection[models.BoardColumn](s, columnsFile)
	if err != nil {
		return err
	}
	kept := cols[:0]
	for _, c := range cols {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return writeCollection(s, columnsFile, kept)
}

// UpdateTaskPomodoro appends the session, bumps the counter for completed
// work sessions and clears the in-flight timer fields
func (s *Store) UpdateTaskPomodoro(ctx context.Context, id string, session models.PomodoroSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Sessions = append(tasks[i].Sessions, session)
			if session.Type == "work" && session.Completed {
				tasks[i].TotalPomodoros++
			}
			tasks[i].ElapsedMs = 0
			tasks[i].Pomodoro = models.PomodoroIdle
			return writeCollection(s, tasksFile, tasks)
		}
	}
	return store.ErrNotFound
}

// UpdateTaskPomodoroState persists a debounced timer snapshot
func (s *Store) UpdateTaskPomodoroState(ctx context.Context, id string, state store.PomodoroState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			if state.Status != nil {
				tasks[i].Pomodoro = *state.Status
			}
			if state.ElapsedMs != nil {
				tasks[i].ElapsedMs = *state.ElapsedMs
			}
			return writeCollection(s, tasksFile, tasks)
		}
	}
	return store.ErrNotFound
}

func (s *Store) removeFrom(name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, err := readCollection[models.Task](s, name)
	if err != nil {
		return err
	}
	next := removeByID(tasks, id)
	if len(next) == len(tasks) {
		return store.ErrNotFound
	}
	return writeCollection(s, name, next)
}

// restoreFrom moves a record back into the active set. A non-empty status
// overrides the record's stored status.
func (s *Store) restoreFrom(name, id, status string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := readCollection[models.Task](s, name)
	if err != nil {
		return "", err
	}
	var source *models.Task
	for i := range records {
		if records[i].ID == id {
			source = &records[i]
			break
		}
	}
	if source == nil {
		return "", store.ErrNotFound
	}

	restored := source.Clone()
	restored.ID = uuid.NewString()
	restored.CreatedAt = time.Now().UnixMilli()
	restored.DeletedAt = 0
	restored.CompletedAt = 0
	restored.OriginalID = ""
	if status != "" {
		restored.Status = status
	}

	tasks, err := readCollection[models.Task](s, tasksFile)
	if err != nil {
		return "", err
	}
	if err := writeCollection(s, tasksFile, append([]models.Task{restored}, tasks...)); err != nil {
		return "", err
	}
	if err := writeCollection(s, name, removeByID(records, id)); err != nil {
		return "", err
	}
	return restored.ID, nil
}

func removeByID(tasks []models.Task, id string) []models.Task {
	kept := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return kept
}

func sortByCreatedDesc(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt > tasks[j].CreatedAt
	})
}
