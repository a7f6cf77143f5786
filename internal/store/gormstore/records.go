package gormstore

import (
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

// taskRecord is the row shape shared by the three task tables
type taskRecord struct {
	ID             string                   `gorm:"primaryKey;size:36"`
	Title          string                   `gorm:"not null"`
	Description    string                   ``
	Status         string                   `gorm:"size:64;not null;index"`
	Priority       string                   `gorm:"size:16"`
	Assignee       string                   `gorm:"size:64;index"`
	Creator        string                   `gorm:"size:64"`
	ProjectID      string                   `gorm:"size:36;index"`
	Type           string                   `gorm:"size:64"`
	Preset         string                   `gorm:"size:32"`
	CreatedAt      int64                    `gorm:"index"`
	StartDate      int64                    ``
	DueDate        int64                    ``
	CompletedAt    int64                    ``
	DeletedAt      int64                    ``
	OriginalID     string                   `gorm:"size:36"`
	Images         []string                 `gorm:"serializer:json"`
	Comments       []models.TaskComment     `gorm:"serializer:json"`
	Sessions       []models.PomodoroSession `gorm:"serializer:json"`
	TotalPomodoros int                      ``
	ElapsedMs      int64                    ``
	Pomodoro       string                   `gorm:"size:16"`
}

func (taskRecord) TableName() string { return "tasks" }

type completedTaskRecord struct {
	taskRecord
}

func (completedTaskRecord) TableName() string { return "completed_tasks" }

type deletedTaskRecord struct {
	taskRecord
}

func (deletedTaskRecord) TableName() string { return "deleted_tasks" }

func taskFromModel(t models.Task) *taskRecord {
	return &taskRecord{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       string(t.Priority),
		Assignee:       t.Assignee,
		Creator:        t.Creator,
		ProjectID:      t.ProjectID,
		Type:           t.Type,
		Preset:         t.Preset,
		CreatedAt:      t.CreatedAt,
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		DeletedAt:      t.DeletedAt,
		OriginalID:     t.OriginalID,
		Images:         t.Images,
		Comments:       t.Comments,
		Sessions:       t.Sessions,
		TotalPomodoros: t.TotalPomodoros,
		ElapsedMs:      t.ElapsedMs,
		Pomodoro:       string(t.Pomodoro),
	}
}

func (r taskRecord) toModel() models.Task {
	return models.Task{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       models.Priority(r.Priority),
		Assignee:       r.Assignee,
		Creator:        r.Creator,
		ProjectID:      r.ProjectID,
		Type:           r.Type,
		Preset:         r.Preset,
		CreatedAt:      r.CreatedAt,
		StartDate:      r.StartDate,
		DueDate:        r.DueDate,
		CompletedAt:    r.CompletedAt,
		DeletedAt:      r.DeletedAt,
		OriginalID:     r.OriginalID,
		Images:         r.Images,
		Comments:       r.Comments,
		Sessions:       r.Sessions,
		TotalPomodoros: r.TotalPomodoros,
		ElapsedMs:      r.ElapsedMs,
		Pomodoro:       models.PomodoroStatus(r.Pomodoro),
	}
}

type projectRecord struct {
	ID    string  `gorm:"primaryKey;size:36"`
	Name  string  `gorm:"not null"`
	Color string  `gorm:"size:32"`
	Order float64 `gorm:"column:order"`
}

func (projectRecord) TableName() string { return "projects" }

func projectFromModel(p models.Project) *projectRecord {
	return &projectRecord{ID: p.ID, Name: p.Name, Color: p.Color, Order: p.Order}
}

func (r projectRecord) toModel() models.Project {
	return models.Project{ID: r.ID, Name: r.Name, Color: r.Color, Order: r.Order}
}

type columnRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"not null"`
	Color     string `gorm:"size:32"`
	Icon      string `gorm:"size:32"`
	Order     int    `gorm:"column:order"`
	IsDefault bool   ``
	Status    string `gorm:"size:64;uniqueIndex"`
	CreatedAt int64  ``
}

func (columnRecord) TableName() string { return "columns" }

func columnFromModel(c models.BoardColumn) *columnRecord {
	return &columnRecord{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		Order:     c.Order,
		IsDefault: c.IsDefault,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func (r columnRecord) toModel() models.BoardColumn {
	return models.BoardColumn{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		Order:     r.Order,
		IsDefault: r.IsDefault,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
