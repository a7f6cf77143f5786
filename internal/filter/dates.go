package filter

import "time"

// startOfDay truncates t to local midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekRange returns the current week's bounds: start of Sunday through the
// last millisecond of Saturday
func weekRange(now time.Time) (int64, int64) {
	today := startOfDay(now)
	start := today.AddDate(0, 0, -int(today.Weekday()))
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}

// monthRange returns the current calendar month's bounds
func monthRange(now time.Time) (int64, int64) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start.UnixMilli(), end.UnixMilli()
}

// IsOverdue reports whether a due date lies before the start of today.
// A task due earlier today is not overdue yet.
func IsOverdue(dueDate int64, now time.Time) bool {
	if dueDate == 0 {
		return false
	}
	return dueDate < startOfDay(now).UnixMilli()
}

// IsDueSoon reports whether a due date falls within the next two days
func IsDueSoon(dueDate int64, now time.Time) bool {
	if dueDate == 0 {
		return false
	}
	return dueDate >= now.UnixMilli() && dueDate <= now.Add(48*time.Hour).UnixMilli()
}
