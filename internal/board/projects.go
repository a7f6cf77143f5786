package board

import (
	"context"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
)

// CreateProject persists a new project and appends it to the set
func (c *Coordinator) CreateProject(ctx context.Context, draft models.Project) (string, error) {
	if draft.Name == "" {
		return "", c.reject(i18n.ActionTitleRequired)
	}
	if draft.Order == 0 {
		draft.Order = float64(len(c.projects) + 1)
	}
	id, err := c.gw.CreateProject(ctx, draft)
	if err != nil {
		c.fail(i18n.ActionCreateProject, err)
		return "", err
	}
	draft.ID = id
	c.projects = append(c.projects, draft)
	return id, nil
}

// UpdateProject applies a partial project edit optimistically
func (c *Coordinator) UpdateProject(ctx context.Context, id string, patch store.ProjectPatch) error {
	return mutate(ctx, c, i18n.ActionUpdateProject, &c.projects, models.CloneProjects,
		func(projects []models.Project) []models.Project {
			for i := range projects {
				if projects[i].ID == id {
					patch.Apply(&projects[i])
					break
				}
			}
			return projects
		},
		func(ctx context.Context) error {
			return c.gw.UpdateProject(ctx, id, patch)
		})
}

// DeleteProject removes a project and its active tasks. The project row
// and the task rows roll back together when the delete call fails; the
// gateway is only asked to delete the project, orphan task cleanup is a
// local convention carried over from the original data model.
func (c *Coordinator) DeleteProject(ctx context.Context, id string) error {
	projectSnapshot := models.CloneProjects(c.projects)
	taskSnapshot := models.CloneTasks(c.tasks)

	projects := c.projects[:0]
	for _, p := range projectSnapshot {
		if p.ID != id {
			projects = append(projects, p)
		}
	}
	c.projects = projects
	tasks := make([]models.Task, 0, len(c.tasks))
	for _, t := range taskSnapshot {
		if t.ProjectID != id {
			tasks = append(tasks, t)
		}
	}
	c.tasks = tasks

	if err := c.gw.DeleteProject(ctx, id); err != nil {
		c.projects = projectSnapshot
		c.tasks = taskSnapshot
		c.fail(i18n.ActionDeleteProject, err)
		return err
	}
	return nil
}

// ReorderProjects rewrites the order of the whole project list. Orders are
// persisted one row at a time; if any write fails the canonical list is
// reloaded instead of rolled back, because some rows may already hold the
// new order.
func (c *Coordinator) ReorderProjects(ctx context.Context, orderedIDs []string) error {
	byID := make(map[string]models.Project, len(c.projects))
	for _, p := range c.projects {
		byID[p.ID] = p
	}

	reordered := make([]models.Project, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		p, ok := byID[id]
		if !ok {
			return c.reject(i18n.ActionReorderProjects)
		}
		p.Order = float64(i + 1)
		reordered = append(reordered, p)
	}
	c.projects = reordered

	for _, p := range reordered {
		if err := c.gw.UpdateProjectOrder(ctx, p.ID, p.Order); err != nil {
			c.fail(i18n.ActionReorderProjects, err)
			if canonical, lerr := c.gw.LoadProjects(ctx); lerr == nil {
				c.projects = canonical
			} else {
				c.log.Error("canonical project reload failed", "error", lerr)
			}
			return err
		}
	}
	return nil
}
