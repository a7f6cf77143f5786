// Package gormstore implements the relational persistence backend on GORM
// with SQLite. Active, completed and deleted task sets live in separate
// tables; owned sub-records (comments, sessions, images) are serialized
// into JSON columns since nothing queries into them.
package gormstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
)

// Store is the GORM-backed gateway
type Store struct {
	db *gorm.DB
}

var _ store.Gateway = (*Store)(nil)

// Open opens (or creates) the database at dsn and runs migrations
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&taskRecord{}, &completedTaskRecord{}, &deletedTaskRecord{}, &projectRecord{}, &columnRecord{}); err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.seedColumns(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) seedColumns() error {
	var count int64
	if err := s.db.Model(&columnRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, c := range models.DefaultColumns() {
		if err := s.db.Create(columnFromModel(c)).Error; err != nil {
			return err
		}
	}
	return nil
}

// LoadTasks returns the active task set, newest first
func (s *Store) LoadTasks(ctx context.Context) ([]models.Task, error) {
	var recs []taskRecord
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	tasks := make([]models.Task, len(recs))
	for i, r := range recs {
		tasks[i] = r.toModel()
	}
	return tasks, nil
}

// LoadCompletedTasks returns the completed-set copies
func (s *Store) LoadCompletedTasks(ctx context.Context) ([]models.Task, error) {
	var recs []completedTaskRecord
	if err := s.db.WithContext(ctx).Order("completed_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	tasks := make([]models.Task, len(recs))
	for i, r := range recs {
		tasks[i] = r.toModel()
	}
	return tasks, nil
}

// LoadDeletedTasks returns the deleted-set records
func (s *Store) LoadDeletedTasks(ctx context.Context) ([]models.Task, error) {
	var recs []deletedTaskRecord
	if err := s.db.WithContext(ctx).Order("deleted_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	tasks := make([]models.Task, len(recs))
	for i, r := range recs {
		tasks[i] = r.toModel()
	}
	return tasks, nil
}

// LoadProjects returns all projects
func (s *Store) LoadProjects(ctx context.Context) ([]models.Project, error) {
	var recs []projectRecord
	if err := s.db.WithContext(ctx).Order("`order` asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	projects := make([]models.Project, len(recs))
	for i, r := range recs {
		projects[i] = r.toModel()
	}
	return projects, nil
}

// LoadColumns returns the board columns in display order
func (s *Store) LoadColumns(ctx context.Context) ([]models.BoardColumn, error) {
	var recs []columnRecord
	if err := s.db.WithContext(ctx).Order("`order` asc").Find(&recs).Error; err != nil {
		return nil, err
	}
	cols := make([]models.BoardColumn, len(recs))
	for i, r := range recs {
		cols[i] = r.toModel()
	}
	return cols, nil
}

// CreateTask assigns a fresh id and createdAt and inserts the task
func (s *Store) CreateTask(ctx context.Context, task models.Task) (string, error) {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UnixMilli()
	if err := s.db.WithContext(ctx).Create(taskFromModel(task)).Error; err != nil {
		return "", err
	}
	return task.ID, nil
}

// UpdateTask applies a partial update to an active task. Read-modify-write
// keeps the JSON-serialized columns coherent with the patch semantics.
func (s *Store) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) error {
	var rec taskRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	task := rec.toModel()
	patch.Apply(&task)
	return s.db.WithContext(ctx).Save(taskFromModel(task)).Error
}

// DeleteTask hard-deletes an active task
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &taskRecord{}, id)
}

// MoveTaskToDeleted copies the task into the deleted table with
// deletedAt/originalId stamped, then removes the active row
func (s *Store) MoveTaskToDeleted(ctx context.Context, id string, task models.Task) error {
	rec := task.Clone()
	rec.ID = uuid.NewString()
	rec.OriginalID = id
	rec.DeletedAt = time.Now().UnixMilli()
	if err := s.db.WithContext(ctx).Create(&deletedTaskRecord{*taskFromModel(rec)}).Error; err != nil {
		return err
	}
	return s.deleteByID(ctx, &taskRecord{}, id)
}

// RestoreDeletedTask re-creates an active task from a deleted row with a
// new id and removes the row
func (s *Store) RestoreDeletedTask(ctx context.Context, deletedID string) (string, error) {
	var rec deletedTaskRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", deletedID).Error; err != nil {
		return "", translate(err)
	}
	newID, err := s.insertRestored(ctx, rec.toModel())
	if err != nil {
		return "", err
	}
	return newID, s.deleteByID(ctx, &deletedTaskRecord{}, deletedID)
}

// PermanentlyDeleteTask removes a deleted-set row irreversibly
func (s *Store) PermanentlyDeleteTask(ctx context.Context, deletedID string) error {
	return s.deleteByID(ctx, &deletedTaskRecord{}, deletedID)
}

// CopyTaskToCompleted copies the task into the completed table, leaving the
// active row untouched
func (s *Store) CopyTaskToCompleted(ctx context.Context, id string, task models.Task) error {
	rec := task.Clone()
	rec.ID = uuid.NewString()
	rec.OriginalID = id
	rec.CompletedAt = time.Now().UnixMilli()
	rec.Status = models.StatusDone
	return s.db.WithContext(ctx).Create(&completedTaskRecord{*taskFromModel(rec)}).Error
}

// RestoreCompletedTask re-creates an active task from a completed row with
// a new id and removes the row. The restored task returns to the TODO
// column.
func (s *Store) RestoreCompletedTask(ctx context.Context, completedID string) (string, error) {
	var rec completedTaskRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", completedID).Error; err != nil {
		return "", translate(err)
	}
	task := rec.toModel()
	task.Status = models.StatusTodo
	newID, err := s.insertRestored(ctx, task)
	if err != nil {
		return "", err
	}
	return newID, s.deleteByID(ctx, &completedTaskRecord{}, completedID)
}

// PermanentlyDeleteCompletedTask removes a completed-set row irreversibly
func (s *Store) PermanentlyDeleteCompletedTask(ctx context.Context, completedID string) error {
	return s.deleteByID(ctx, &completedTaskRecord{}, completedID)
}

func (s *Store) insertRestored(ctx context.Context, task models.Task) (string, error) {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UnixMilli()
	task.DeletedAt = 0
	task.CompletedAt = 0
	task.OriginalID = ""
	if err := s.db.WithContext(ctx).Create(taskFromModel(task)).Error; err != nil {
		return "", err
	}
	return task.ID, nil
}

// CreateProject assigns an id and inserts the project
func (s *Store) CreateProject(ctx context.Context, project models.Project) (string, error) {
	project.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(projectFromModel(project)).Error; err != nil {
		return "", err
	}
	return project.ID, nil
}

// UpdateProject applies a partial update to a project
func (s *Store) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) error {
	var rec projectRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	project := rec.toModel()
	patch.Apply(&project)
	return s.db.WithContext(ctx).Save(projectFromModel(project)).Error
}

// DeleteProject removes the project row only; referencing tasks are not
// cascaded
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&projectRecord{}, "id = ?", id).Error
}

// UpdateProjectOrder persists a single project's order value
func (s *Store) UpdateProjectOrder(ctx context.Context, id string, order float64) error {
	res := s.db.WithContext(ctx).Model(&projectRecord{}).Where("id = ?", id).Update("order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// CreateColumn assigns an id and createdAt and inserts the column
func (s *Store) CreateColumn(ctx context.Context, column models.BoardColumn) (string, error) {
	column.ID = uuid.NewString()
	column.CreatedAt = time.Now().UnixMilli()
	if err := s.db.WithContext(ctx).Create(columnFromModel(column)).Error; err != nil {
		return "", err
	}
	return column.ID, nil
}

// UpdateColumn applies a partial update to a column
func (s *Store) UpdateColumn(ctx context.Context, id string, patch store.ColumnPatch) error {
	var rec columnRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	col := rec.toModel()
	patch.Apply(&col)
	return s.db.WithContext(ctx).Save(columnFromModel(col)).Error
}

// DeleteColumn removes a column row; task reassignment happens upstream
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&columnRecord{}, "id = ?", id).Error
}

// UpdateTaskPomodoro appends the session, bumps the counter for completed
// work sessions and clears the in-flight timer fields
func (s *Store) UpdateTaskPomodoro(ctx context.Context, id string, session models.PomodoroSession) error {
	var rec taskRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	task := rec.toModel()
	task.Sessions = append(task.Sessions, session)
	if session.Type == "work" && session.Completed {
		task.TotalPomodoros++
	}
	task.ElapsedMs = 0
	task.Pomodoro = models.PomodoroIdle
	return s.db.WithContext(ctx).Save(taskFromModel(task)).Error
}

// UpdateTaskPomodoroState persists a debounced timer snapshot
func (s *Store) UpdateTaskPomodoroState(ctx context.Context, id string, state store.PomodoroState) error {
	updates := map[string]interface{}{}
	if state.Status != nil {
		updates["pomodoro"] = string(*state.Status)
	}
	if state.ElapsedMs != nil {
		updates["elapsed_ms"] = *state.ElapsedMs
	}
	if len(updates) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, model interface{}, id string) error {
	res := s.db.WithContext(ctx).Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
