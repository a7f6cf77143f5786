// Package filter narrows the full task set through a fixed-order chain:
// project, then assignee, then completed-only, then due-date bucket.
// The order is part of the contract; the badge counts are computed over
// the pre-date-filter set while per-status counts use the final set.
package filter

import (
	"time"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

// DateBucket is a due-date-relative classification
type DateBucket string

const (
	BucketAll     DateBucket = "all"
	BucketOverdue DateBucket = "overdue"
	BucketToday   DateBucket = "today"
	BucketWeek    DateBucket = "week"
	BucketMonth   DateBucket = "month"
)

// Selection holds the active filter choices
type Selection struct {
	ProjectID     string // empty = all projects
	Assignee      string // empty = everyone
	CompletedOnly bool
	Bucket        DateBucket
}

// Counts are the derived badge numbers
type Counts struct {
	Overdue  int
	Today    int
	Week     int
	Total    int
	Filtered int
	ByStatus map[string]int
}

// Result carries both intermediate and final sets so the caller can build
// badges without re-running stages
type Result struct {
	// PreDate is the set after project/assignee/completed stages
	PreDate []models.Task
	// Tasks is the final set after the date bucket stage
	Tasks  []models.Task
	Counts Counts
}

// Apply runs the pipeline over tasks at the given instant
func Apply(tasks []models.Task, sel Selection, now time.Time) Result {
	filtered := tasks

	if sel.ProjectID != "" {
		filtered = keep(filtered, func(t models.Task) bool { return t.ProjectID == sel.ProjectID })
	}
	if sel.Assignee != "" {
		filtered = keep(filtered, func(t models.Task) bool { return t.Assignee == sel.Assignee })
	}
	if sel.CompletedOnly {
		filtered = keep(filtered, func(t models.Task) bool { return t.Status == models.StatusDone })
	}

	dated := keep(filtered, func(t models.Task) bool { return matchesBucket(t, sel.Bucket, now) })

	counts := Counts{
		Total:    len(filtered),
		Filtered: len(dated),
		ByStatus: make(map[string]int),
	}
	for _, t := range filtered {
		if matchesBucket(t, BucketOverdue, now) {
			counts.Overdue++
		}
		if matchesBucket(t, BucketToday, now) {
			counts.Today++
		}
		if matchesBucket(t, BucketWeek, now) {
			counts.Week++
		}
	}
	for _, t := range dated {
		counts.ByStatus[t.Status]++
	}

	return Result{PreDate: filtered, Tasks: dated, Counts: counts}
}

// ByStatus projects the tasks belonging to one column
func ByStatus(tasks []models.Task, status string) []models.Task {
	return keep(tasks, func(t models.Task) bool { return t.Status == status })
}

// CountByProject tallies active tasks per project id for sidebar badges
func CountByProject(tasks []models.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.ProjectID]++
	}
	return counts
}

// matchesBucket classifies one task against a date bucket. Tasks without a
// due date only match the "all" bucket.
func matchesBucket(t models.Task, bucket DateBucket, now time.Time) bool {
	if bucket == BucketAll || bucket == "" {
		return true
	}
	if t.DueDate == 0 {
		return false
	}
	switch bucket {
	case BucketOverdue:
		return IsOverdue(t.DueDate, now) && t.Status != models.StatusDone
	case BucketToday:
		start := startOfDay(now).UnixMilli()
		end := startOfDay(now).AddDate(0, 0, 1).UnixMilli()
		return t.DueDate >= start && t.DueDate < end
	case BucketWeek:
		start, end := weekRange(now)
		return t.DueDate >= start && t.DueDate <= end
	case BucketMonth:
		start, end := monthRange(now)
		return t.DueDate >= start && t.DueDate <= end
	}
	return true
}

func keep(tasks []models.Task, pred func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
