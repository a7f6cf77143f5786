package board

import (
	"context"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
)

func cloneColumns(cols []models.BoardColumn) []models.BoardColumn {
	if cols == nil {
		return nil
	}
	return append([]models.BoardColumn(nil), cols...)
}

// CreateColumn adds a user column. The status identifier must be unique
// across the live column set since it is the join key to tasks.
func (c *Coordinator) CreateColumn(ctx context.Context, draft models.BoardColumn) (string, error) {
	if draft.Name == "" {
		return "", c.reject(i18n.ActionTitleRequired)
	}
	if draft.Status == "" || c.ValidStatus(draft.Status) {
		return "", c.reject(i18n.ActionDuplicateStatus)
	}
	if draft.Order == 0 {
		draft.Order = len(c.columns) + 1
	}
	draft.CreatedAt = c.now().UnixMilli()

	id, err := c.gw.CreateColumn(ctx, draft)
	if err != nil {
		c.fail(i18n.ActionCreateColumn, err)
		return "", err
	}
	draft.ID = id
	c.columns = append(c.columns, draft)
	return id, nil
}

// UpdateColumn edits a column's presentation fields. The status identifier
// is immutable after creation; renaming a column never detaches its tasks.
func (c *Coordinator) UpdateColumn(ctx context.Context, id string, patch store.ColumnPatch) error {
	return mutate(ctx, c, i18n.ActionUpdateColumn, &c.columns, cloneColumns,
		func(cols []models.BoardColumn) []models.BoardColumn {
			for i := range cols {
				if cols[i].ID == id {
					patch.Apply(&cols[i])
					break
				}
			}
			return cols
		},
		func(ctx context.Context) error {
			return c.gw.UpdateColumn(ctx, id, patch)
		})
}

// DeleteColumn removes a user column and sends its tasks back to TODO.
// Task reassignment happens first, one row at a time; if any write fails
// the local task set rolls back and the column stays. Only after every
// task is safely off the column is the column itself deleted.
func (c *Coordinator) DeleteColumn(ctx context.Context, id string) error {
	var target *models.BoardColumn
	for i := range c.columns {
		if c.columns[i].ID == id {
			target = &c.columns[i]
			break
		}
	}
	if target == nil {
		return c.reject(i18n.ActionDeleteColumn)
	}
	if target.IsDefault {
		return c.reject(i18n.ActionDefaultColumn)
	}

	taskSnapshot := models.CloneTasks(c.tasks)
	status := models.StatusTodo
	patch := store.TaskPatch{Status: &status}

	var moved []string
	for i := range c.tasks {
		if c.tasks[i].Status == target.Status {
			c.tasks[i].Status = models.StatusTodo
			moved = append(moved, c.tasks[i].ID)
		}
	}
	for _, taskID := range moved {
		if err := c.gw.UpdateTask(ctx, taskID, patch); err != nil {
			c.tasks = taskSnapshot
			c.fail(i18n.ActionDeleteColumn, err)
			return err
		}
	}

	columnSnapshot := cloneColumns(c.columns)
	cols := make([]models.BoardColumn, 0, len(c.columns))
	for _, col := range columnSnapshot {
		if col.ID != id {
			cols = append(cols, col)
		}
	}
	c.columns = cols

	if err := c.gw.DeleteColumn(ctx, id); err != nil {
		c.columns = columnSnapshot
		c.fail(i18n.ActionDeleteColumn, err)
		return err
	}
	return nil
}
