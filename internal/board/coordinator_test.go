package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
)

var errBoom = errors.New("boom")

// fakeGateway is an in-memory store.Gateway whose calls can be forced to
// fail per method name
type fakeGateway struct {
	tasks     []models.Task
	projects  []models.Project
	columns   []models.BoardColumn
	completed []models.Task
	deleted   []models.Task

	failing map[string]bool
	calls   []string
	nextID  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		columns: models.DefaultColumns(),
		failing: map[string]bool{},
	}
}

func (g *fakeGateway) failOn(method string) { g.failing[method] = true }

func (g *fakeGateway) check(method string) error {
	g.calls = append(g.calls, method)
	if g.failing[method] {
		return errBoom
	}
	return nil
}

func (g *fakeGateway) id(prefix string) string {
	g.nextID++
	return fmt.Sprintf("%s%d", prefix, g.nextID)
}

func (g *fakeGateway) LoadTasks(ctx context.Context) ([]models.Task, error) {
	if err := g.check("LoadTasks"); err != nil {
		return nil, err
	}
	return models.CloneTasks(g.tasks), nil
}

func (g *fakeGateway) LoadProjects(ctx context.Context) ([]models.Project, error) {
	if err := g.check("LoadProjects"); err != nil {
		return nil, err
	}
	return models.CloneProjects(g.projects), nil
}

func (g *fakeGateway) LoadColumns(ctx context.Context) ([]models.BoardColumn, error) {
	if err := g.check("LoadColumns"); err != nil {
		return nil, err
	}
	return append([]models.BoardColumn(nil), g.columns...), nil
}

func (g *fakeGateway) LoadCompletedTasks(ctx context.Context) ([]models.Task, error) {
	if err := g.check("LoadCompletedTasks"); err != nil {
		return nil, err
	}
	return models.CloneTasks(g.completed), nil
}

func (g *fakeGateway) LoadDeletedTasks(ctx context.Context) ([]models.Task, error) {
	if err := g.check("LoadDeletedTasks"); err != nil {
		return nil, err
	}
	return models.CloneTasks(g.deleted), nil
}

func (g *fakeGateway) CreateTask(ctx context.Context, task models.Task) (string, error) {
	if err := g.check("CreateTask"); err != nil {
		return "", err
	}
	task.ID = g.id("task-")
	g.tasks = append(g.tasks, task)
	return task.ID, nil
}

func (g *fakeGateway) UpdateTask(ctx context.Context, id string, patch store.TaskPatch) error {
	if err := g.check("UpdateTask"); err != nil {
		return err
	}
	for i := range g.tasks {
		if g.tasks[i].ID == id {
			patch.Apply(&g.tasks[i])
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) DeleteTask(ctx context.Context, id string) error {
	return g.check("DeleteTask")
}

func (g *fakeGateway) MoveTaskToDeleted(ctx context.Context, id string, task models.Task) error {
	if err := g.check("MoveTaskToDeleted"); err != nil {
		return err
	}
	rec := task.Clone()
	rec.ID = g.id("del-")
	rec.OriginalID = id
	rec.DeletedAt = time.Now().UnixMilli()
	g.deleted = append(g.deleted, rec)
	for i := range g.tasks {
		if g.tasks[i].ID == id {
			g.tasks = append(g.tasks[:i], g.tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (g *fakeGateway) RestoreDeletedTask(ctx context.Context, deletedID string) (string, error) {
	if err := g.check("RestoreDeletedTask"); err != nil {
		return "", err
	}
	for i := range g.deleted {
		if g.deleted[i].ID == deletedID {
			restored := g.deleted[i].Clone()
			restored.ID = g.id("task-")
			restored.OriginalID = ""
			g.tasks = append(g.tasks, restored)
			g.deleted = append(g.deleted[:i], g.deleted[i+1:]...)
			return restored.ID, nil
		}
	}
	return "", store.ErrNotFound
}

func (g *fakeGateway) PermanentlyDeleteTask(ctx context.Context, deletedID string) error {
	if err := g.check("PermanentlyDeleteTask"); err != nil {
		return err
	}
	for i := range g.deleted {
		if g.deleted[i].ID == deletedID {
			g.deleted = append(g.deleted[:i], g.deleted[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) CopyTaskToCompleted(ctx context.Context, id string, task models.Task) error {
	if err := g.check("CopyTaskToCompleted"); err != nil {
		return err
	}
	task.OriginalID = id
	g.completed = append(g.completed, task)
	return nil
}

func (g *fakeGateway) RestoreCompletedTask(ctx context.Context, completedID string) (string, error) {
	if err := g.check("RestoreCompletedTask"); err != nil {
		return "", err
	}
	for i := range g.completed {
		if g.completed[i].ID == completedID {
			restored := g.completed[i].Clone()
			restored.ID = g.id("task-")
			restored.Status = models.StatusTodo
			restored.CompletedAt = 0
			g.tasks = append(g.tasks, restored)
			g.completed = append(g.completed[:i], g.completed[i+1:]...)
			return restored.ID, nil
		}
	}
	return "", store.ErrNotFound
}

func (g *fakeGateway) PermanentlyDeleteCompletedTask(ctx context.Context, completedID string) error {
	if err := g.check("PermanentlyDeleteCompletedTask"); err != nil {
		return err
	}
	for i := range g.completed {
		if g.completed[i].ID == completedID {
			g.completed = append(g.completed[:i], g.completed[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) CreateProject(ctx context.Context, project models.Project) (string, error) {
	if err := g.check("CreateProject"); err != nil {
		return "", err
	}
	project.ID = g.id("proj-")
	g.projects = append(g.projects, project)
	return project.ID, nil
}

func (g *fakeGateway) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) error {
	if err := g.check("UpdateProject"); err != nil {
		return err
	}
	for i := range g.projects {
		if g.projects[i].ID == id {
			patch.Apply(&g.projects[i])
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) DeleteProject(ctx context.Context, id string) error {
	if err := g.check("DeleteProject"); err != nil {
		return err
	}
	for i := range g.projects {
		if g.projects[i].ID == id {
			g.projects = append(g.projects[:i], g.projects[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) UpdateProjectOrder(ctx context.Context, id string, order float64) error {
	if err := g.check("UpdateProjectOrder"); err != nil {
		return err
	}
	for i := range g.projects {
		if g.projects[i].ID == id {
			g.projects[i].Order = order
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) CreateColumn(ctx context.Context, column models.BoardColumn) (string, error) {
	if err := g.check("CreateColumn"); err != nil {
		return "", err
	}
	column.ID = g.id("col-")
	g.columns = append(g.columns, column)
	return column.ID, nil
}

func (g *fakeGateway) UpdateColumn(ctx context.Context, id string, patch store.ColumnPatch) error {
	if err := g.check("UpdateColumn"); err != nil {
		return err
	}
	for i := range g.columns {
		if g.columns[i].ID == id {
			patch.Apply(&g.columns[i])
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) DeleteColumn(ctx context.Context, id string) error {
	if err := g.check("DeleteColumn"); err != nil {
		return err
	}
	for i := range g.columns {
		if g.columns[i].ID == id {
			g.columns = append(g.columns[:i], g.columns[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) UpdateTaskPomodoro(ctx context.Context, id string, session models.PomodoroSession) error {
	if err := g.check("UpdateTaskPomodoro"); err != nil {
		return err
	}
	for i := range g.tasks {
		if g.tasks[i].ID == id {
			g.tasks[i].Sessions = append(g.tasks[i].Sessions, session)
			return nil
		}
	}
	return store.ErrNotFound
}

func (g *fakeGateway) UpdateTaskPomodoroState(ctx context.Context, id string, state store.PomodoroState) error {
	if err := g.check("UpdateTaskPomodoroState"); err != nil {
		return err
	}
	for i := range g.tasks {
		if g.tasks[i].ID == id {
			if state.Status != nil {
				g.tasks[i].Pomodoro = *state.Status
			}
			if state.ElapsedMs != nil {
				g.tasks[i].ElapsedMs = *state.ElapsedMs
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func newTestCoordinator(t *testing.T, gw *fakeGateway) *Coordinator {
	t.Helper()
	co := New(gw, slog.New(slog.NewTextHandler(io.Discard, nil)), i18n.New("es"))
	require.NoError(t, co.Load(context.Background()))
	return co
}

func seedTask(gw *fakeGateway, id, title, projectID, status string) models.Task {
	task := models.Task{
		ID:        id,
		Title:     title,
		ProjectID: projectID,
		Status:    status,
		Priority:  models.PriorityMedium,
	}
	gw.tasks = append(gw.tasks, task)
	return task
}

func TestCreateTaskValidation(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1", Name: "Interno"}}
	co := newTestCoordinator(t, gw)
	ctx := context.Background()

	_, err := co.CreateTask(ctx, models.Task{Title: "sin proyecto"})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, i18n.ActionProjectRequired, verr.Action)
	assert.NotEmpty(t, co.Err())
	assert.Empty(t, co.Tasks())

	_, err = co.CreateTask(ctx, models.Task{ProjectID: "nope", Title: "x"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, i18n.ActionProjectNotFound, verr.Action)

	_, err = co.CreateTask(ctx, models.Task{ProjectID: "p1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, i18n.ActionTitleRequired, verr.Action)

	_, err = co.CreateTask(ctx, models.Task{ProjectID: "p1", Title: "x", Status: "NO_SUCH"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, i18n.ActionUnknownStatus, verr.Action)

	// Nothing reached the gateway
	for _, call := range gw.calls {
		assert.NotEqual(t, "CreateTask", call)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	co := newTestCoordinator(t, gw)

	id, err := co.CreateTask(context.Background(), models.Task{ProjectID: "p1", Title: "nueva"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	task, ok := co.Task(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.NotZero(t, task.CreatedAt)

	// New tasks go to the head of the set
	assert.Equal(t, id, co.Tasks()[0].ID)
}

func TestUpdateTaskRollsBackOnFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "original", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	before := models.CloneTasks(co.Tasks())

	gw.failOn("UpdateTask")
	title := "editada"
	err := co.UpdateTask(context.Background(), "t1", store.TaskPatch{Title: &title})
	require.Error(t, err)

	// Snapshot restored wholesale
	assert.Equal(t, before, co.Tasks())
	assert.Equal(t, "Error al actualizar la tarea.", co.Err())
}

func TestUpdateTaskAppliesOptimistically(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "original", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	title := "editada"
	require.NoError(t, co.UpdateTask(context.Background(), "t1", store.TaskPatch{Title: &title}))

	task, _ := co.Task("t1")
	assert.Equal(t, "editada", task.Title)
	assert.Empty(t, co.Err())
}

func TestCompleteTaskKeepsActiveRecord(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "terminar", "p1", models.StatusInProgress)
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.CompleteTask(context.Background(), "t1"))

	// Completion is non-destructive: the active record stays, flipped to DONE
	task, ok := co.Task("t1")
	require.True(t, ok)
	assert.Equal(t, models.StatusDone, task.Status)
	assert.NotZero(t, task.CompletedAt)

	// And an independent completion copy exists
	require.Len(t, gw.completed, 1)
	assert.Equal(t, "t1", gw.completed[0].OriginalID)
}

func TestCompleteTaskCopyFailureStillFlipsStatus(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "terminar", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	gw.failOn("CopyTaskToCompleted")
	err := co.CompleteTask(context.Background(), "t1")

	// The status update is an independent operation and still succeeds
	require.NoError(t, err)
	task, _ := co.Task("t1")
	assert.Equal(t, models.StatusDone, task.Status)
	assert.NotEmpty(t, co.Err())
}

func TestSoftDeleteMovesToTrash(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "borrar", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.SoftDeleteTask(context.Background(), "t1"))

	_, ok := co.Task("t1")
	assert.False(t, ok)
	require.Len(t, co.DeletedTasks(), 1)
	assert.Equal(t, "t1", co.DeletedTasks()[0].OriginalID)
	assert.NotZero(t, co.DeletedTasks()[0].DeletedAt)
}

func TestSoftDeleteThenRestoreSameSession(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "volátil", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.SoftDeleteTask(context.Background(), "t1"))

	// The local trash record carries the gateway-assigned id, not the
	// active task's id, so a restore works without a restart
	require.Len(t, co.DeletedTasks(), 1)
	rec := co.DeletedTasks()[0]
	assert.NotEqual(t, "t1", rec.ID)
	assert.Equal(t, "t1", rec.OriginalID)

	require.NoError(t, co.RestoreDeletedTask(context.Background(), rec.ID))
	assert.Empty(t, co.DeletedTasks())
	require.Len(t, co.Tasks(), 1)
	assert.Equal(t, "volátil", co.Tasks()[0].Title)
}

func TestLoadDeletedRefreshesTrash(t *testing.T) {
	gw := newFakeGateway()
	gw.deleted = []models.Task{{ID: "d1", Title: "vieja", OriginalID: "t-old"}}
	co := newTestCoordinator(t, gw)
	require.Len(t, co.DeletedTasks(), 1)

	gw.deleted = append(gw.deleted, models.Task{ID: "d2", Title: "nueva", OriginalID: "t-new"})
	require.NoError(t, co.LoadDeleted(context.Background()))
	assert.Len(t, co.DeletedTasks(), 2)
}

func TestSoftDeleteRollsBackOnFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "borrar", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	gw.failOn("MoveTaskToDeleted")
	require.Error(t, co.SoftDeleteTask(context.Background(), "t1"))

	_, ok := co.Task("t1")
	assert.True(t, ok)
	assert.Empty(t, co.DeletedTasks())
}

func TestRestoreDeletedTaskGetsFreshIdentity(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	gw.deleted = []models.Task{{ID: "d1", Title: "volver", ProjectID: "p1", OriginalID: "t-old"}}
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.RestoreDeletedTask(context.Background(), "d1"))

	assert.Empty(t, co.DeletedTasks())
	require.Len(t, co.Tasks(), 1)
	restored := co.Tasks()[0]
	assert.NotEqual(t, "t-old", restored.ID)
	assert.NotEqual(t, "d1", restored.ID)
	assert.Equal(t, "volver", restored.Title)
}

func TestAddCommentIsAppendOnly(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	task := seedTask(gw, "t1", "comentada", "p1", models.StatusTodo)
	task.Comments = []models.TaskComment{{ID: "c1", Text: "primero", Author: "Dairo"}}
	gw.tasks[0] = task
	co := newTestCoordinator(t, gw)

	ctx := context.Background()
	require.NoError(t, co.AddComment(ctx, "t1", "segundo", "Stiven"))
	require.NoError(t, co.AddComment(ctx, "t1", "tercero", "Mariana"))

	got, _ := co.Task("t1")
	require.Len(t, got.Comments, 3)
	assert.Equal(t, "primero", got.Comments[0].Text)
	assert.Equal(t, "segundo", got.Comments[1].Text)
	assert.Equal(t, "tercero", got.Comments[2].Text)
}

func TestRecordSessionKeptOnPersistFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "pomodoro", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	gw.failOn("UpdateTaskPomodoro")
	co.RecordSession(context.Background(), models.PomodoroSession{
		ID: "s1", TaskID: "t1", Type: "work", Completed: true, Duration: 1500000,
	})

	task, _ := co.Task("t1")
	require.Len(t, task.Sessions, 1)
	assert.Equal(t, 1, task.TotalPomodoros)
	assert.Equal(t, models.PomodoroIdle, task.Pomodoro)
	assert.Equal(t, int64(0), task.ElapsedMs)
	assert.NotEmpty(t, co.Err())
}

func TestDeleteProjectRemovesItsTasks(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}, {ID: "p2"}}
	seedTask(gw, "t1", "mía", "p1", models.StatusTodo)
	seedTask(gw, "t2", "ajena", "p2", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.DeleteProject(context.Background(), "p1"))

	assert.Len(t, co.Projects(), 1)
	require.Len(t, co.Tasks(), 1)
	assert.Equal(t, "t2", co.Tasks()[0].ID)
}

func TestDeleteProjectRollsBackBothCollections(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "mía", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	gw.failOn("DeleteProject")
	require.Error(t, co.DeleteProject(context.Background(), "p1"))

	assert.Len(t, co.Projects(), 1)
	assert.Len(t, co.Tasks(), 1)
}

func TestReorderProjectsReloadsCanonicalOnFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{
		{ID: "p1", Order: 1},
		{ID: "p2", Order: 2},
		{ID: "p3", Order: 3},
	}
	co := newTestCoordinator(t, gw)

	gw.failOn("UpdateProjectOrder")
	err := co.ReorderProjects(context.Background(), []string{"p3", "p1", "p2"})
	require.Error(t, err)

	// A half-applied reorder reloads the persisted list instead of
	// restoring a snapshot that may no longer be true
	assert.Contains(t, gw.calls, "LoadProjects")
	assert.Equal(t, gw.projects, co.Projects())
}

func TestReorderProjectsAssignsSequentialOrder(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{
		{ID: "p1", Order: 1},
		{ID: "p2", Order: 2},
	}
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.ReorderProjects(context.Background(), []string{"p2", "p1"}))

	assert.Equal(t, "p2", co.Projects()[0].ID)
	assert.Equal(t, float64(1), co.Projects()[0].Order)
	assert.Equal(t, float64(2), co.Projects()[1].Order)
}

func TestDeleteColumnReassignsTasks(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	gw.columns = append(gw.columns, models.BoardColumn{
		ID: "col-custom", Name: "Revisión", Status: "REVIEW",
	})
	seedTask(gw, "t1", "en revisión", "p1", "REVIEW")
	seedTask(gw, "t2", "tranquila", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)

	require.NoError(t, co.DeleteColumn(context.Background(), "col-custom"))

	task, _ := co.Task("t1")
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Len(t, co.Columns(), 3)
	assert.False(t, co.ValidStatus("REVIEW"))
}

func TestDeleteColumnKeepsColumnWhenReassignmentFails(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	gw.columns = append(gw.columns, models.BoardColumn{
		ID: "col-custom", Name: "Revisión", Status: "REVIEW",
	})
	seedTask(gw, "t1", "en revisión", "p1", "REVIEW")
	co := newTestCoordinator(t, gw)

	gw.failOn("UpdateTask")
	require.Error(t, co.DeleteColumn(context.Background(), "col-custom"))

	// The column survives and the task keeps its status
	task, _ := co.Task("t1")
	assert.Equal(t, "REVIEW", task.Status)
	assert.True(t, co.ValidStatus("REVIEW"))
	for _, call := range gw.calls {
		assert.NotEqual(t, "DeleteColumn", call)
	}
}

func TestDeleteDefaultColumnRejected(t *testing.T) {
	gw := newFakeGateway()
	co := newTestCoordinator(t, gw)

	var defaultID string
	for _, col := range co.Columns() {
		if col.IsDefault {
			defaultID = col.ID
			break
		}
	}
	require.NotEmpty(t, defaultID)

	var verr ValidationError
	err := co.DeleteColumn(context.Background(), defaultID)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, i18n.ActionDefaultColumn, verr.Action)
	assert.Len(t, co.Columns(), 3)
}

func TestCreateColumnRejectsDuplicateStatus(t *testing.T) {
	gw := newFakeGateway()
	co := newTestCoordinator(t, gw)

	var verr ValidationError
	_, err := co.CreateColumn(context.Background(), models.BoardColumn{
		Name: "Otra", Status: models.StatusTodo,
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, i18n.ActionDuplicateStatus, verr.Action)
}

func TestErrorSlotLatestWins(t *testing.T) {
	gw := newFakeGateway()
	gw.projects = []models.Project{{ID: "p1"}}
	seedTask(gw, "t1", "uno", "p1", models.StatusTodo)
	co := newTestCoordinator(t, gw)
	ctx := context.Background()

	gw.failOn("UpdateTask")
	title := "x"
	co.UpdateTask(ctx, "t1", store.TaskPatch{Title: &title})
	first := co.Err()

	gw.failOn("MoveTaskToDeleted")
	co.SoftDeleteTask(ctx, "t1")
	second := co.Err()

	assert.NotEqual(t, first, second)

	co.DismissError()
	assert.Empty(t, co.Err())
}
