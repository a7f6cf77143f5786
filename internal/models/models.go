package models

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status identifiers carried by the default board columns. The set of valid
// statuses is open: user-created columns introduce new identifiers at
// runtime, so Task.Status is a plain string validated against the live
// column set, never an enum.
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// PomodoroStatus represents the timer state persisted on a task
type PomodoroStatus string

const (
	PomodoroIdle    PomodoroStatus = "idle"
	PomodoroRunning PomodoroStatus = "running"
	PomodoroPaused  PomodoroStatus = "paused"
	PomodoroBreak   PomodoroStatus = "break"
)

// MaxTaskImages is the hard ceiling on attached images per task
const MaxTaskImages = 5

// TeamMember is an entry in the fixed roster
type TeamMember struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	Initials string `json:"initials" yaml:"initials"`
	Color    string `json:"color" yaml:"color"`
}

// TrackingPreset is a named work duration for the timer
type TrackingPreset struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Minutes int    `json:"minutes" yaml:"minutes"`
}

// TaskComment is a comment on a task. Comments are append-only: they are
// never edited or removed once attached.
type TaskComment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"` // epoch ms
}

// PomodoroSession is one completed work or break interval. Immutable once
// appended to a task's history.
type PomodoroSession struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	StartTime int64  `json:"startTime"` // epoch ms
	EndTime   int64  `json:"endTime"`   // epoch ms
	Duration  int64  `json:"duration"`  // ms
	Completed bool   `json:"completed"`
	Type      string `json:"type"` // "work" or "break"
	Date      string `json:"date"` // ISO date YYYY-MM-DD
}

// Task is the central entity
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    Priority `json:"priority"`
	Assignee    string   `json:"assignee"`
	Creator     string   `json:"creator"`
	ProjectID   string   `json:"projectId"`
	Type        string   `json:"type,omitempty"`
	Preset      string   `json:"trackingPreset,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	StartDate   int64    `json:"startDate,omitempty"`
	DueDate     int64    `json:"dueDate,omitempty"`
	CompletedAt int64    `json:"completedAt,omitempty"`
	DeletedAt   int64    `json:"deletedAt,omitempty"`
	// OriginalID references the active-set id a deleted/completed copy came from
	OriginalID string        `json:"originalId,omitempty"`
	Images     []string      `json:"images,omitempty"`
	Comments   []TaskComment `json:"comments,omitempty"`

	// Pomodoro sub-state
	Sessions       []PomodoroSession `json:"pomodoroSessions,omitempty"`
	TotalPomodoros int               `json:"totalPomodoros,omitempty"`
	// ElapsedMs is the in-flight timer reading (count-up, ms elapsed)
	ElapsedMs int64          `json:"currentPomodoroTime,omitempty"`
	Pomodoro  PomodoroStatus `json:"pomodoroStatus,omitempty"`
}

// Clone returns a deep copy of the task, including owned sub-records
func (t Task) Clone() Task {
	c := t
	if t.Images != nil {
		c.Images = append([]string(nil), t.Images...)
	}
	if t.Comments != nil {
		c.Comments = append([]TaskComment(nil), t.Comments...)
	}
	if t.Sessions != nil {
		c.Sessions = append([]PomodoroSession(nil), t.Sessions...)
	}
	return c
}

// CloneTasks deep-copies a task slice for mutation snapshots
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Project groups tasks on the board
type Project struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Order float64 `json:"order,omitempty"`
}

// CloneProjects copies a project slice for mutation snapshots
func CloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	return append([]Project(nil), projects...)
}

// BoardColumn is a named status bucket on the board. Default columns cannot
// be deleted; user columns can, which reassigns their tasks back to TODO.
type BoardColumn struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon,omitempty"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"isDefault,omitempty"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}
