package models

import "time"

// DefaultColumns returns the three built-in board columns
func DefaultColumns() []BoardColumn {
	now := time.Now().UnixMilli()
	return []BoardColumn{
		{ID: "col-todo", Name: "Tarea", Color: "#7aa2f7", Icon: "circle", Order: 0, IsDefault: true, Status: StatusTodo, CreatedAt: now},
		{ID: "col-in-progress", Name: "En curso", Color: "#e0af68", Icon: "clock", Order: 1, IsDefault: true, Status: StatusInProgress, CreatedAt: now},
		{ID: "col-done", Name: "Terminada", Color: "#9ece6a", Icon: "check", Order: 2, IsDefault: true, Status: StatusDone, CreatedAt: now},
	}
}

// DefaultWorkDuration is the standard pomodoro work interval
const DefaultWorkDuration = 25 * time.Minute
