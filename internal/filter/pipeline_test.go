package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

// Wednesday mid-week so today/week/month buckets are all distinct
var testNow = time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

func dayMillis(offset int) int64 {
	return testNow.AddDate(0, 0, offset).UnixMilli()
}

func TestApplyStagesInOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", ProjectID: "p1", Assignee: "Dairo", Status: models.StatusTodo, DueDate: dayMillis(-3)},
		{ID: "b", ProjectID: "p1", Assignee: "Stiven", Status: models.StatusTodo, DueDate: dayMillis(-3)},
		{ID: "c", ProjectID: "p2", Assignee: "Dairo", Status: models.StatusTodo, DueDate: dayMillis(-3)},
		{ID: "d", ProjectID: "p1", Assignee: "Dairo", Status: models.StatusDone, DueDate: dayMillis(-3)},
		{ID: "e", ProjectID: "p1", Assignee: "Dairo", Status: models.StatusTodo},
	}

	sel := Selection{ProjectID: "p1", Assignee: "Dairo", Bucket: BucketOverdue}
	res := Apply(tasks, sel, testNow)

	// Project and assignee stages keep a, d, e; the overdue bucket then
	// keeps only a (d is done, e has no due date)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "a", res.Tasks[0].ID)

	// PreDate holds the pre-bucket set
	ids := make([]string, 0, len(res.PreDate))
	for _, task := range res.PreDate {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"a", "d", "e"}, ids)
}

func TestBadgeCountsUsePreDateSet(t *testing.T) {
	tasks := []models.Task{
		{ID: "overdue", Status: models.StatusTodo, DueDate: dayMillis(-2)},
		{ID: "today", Status: models.StatusTodo, DueDate: testNow.UnixMilli()},
		{ID: "nodate", Status: models.StatusTodo},
	}

	// Even while viewing only today's tasks, the overdue badge still
	// reports the overdue count of the broader selection
	res := Apply(tasks, Selection{Bucket: BucketToday}, testNow)

	assert.Equal(t, 1, res.Counts.Overdue)
	assert.Equal(t, 1, res.Counts.Today)
	assert.Equal(t, 3, res.Counts.Total)
	assert.Equal(t, 1, res.Counts.Filtered)
}

func TestByStatusCountsUseFinalSet(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Status: models.StatusTodo, DueDate: testNow.UnixMilli()},
		{ID: "b", Status: models.StatusTodo, DueDate: dayMillis(-5)},
		{ID: "c", Status: models.StatusInProgress, DueDate: testNow.UnixMilli()},
	}

	res := Apply(tasks, Selection{Bucket: BucketToday}, testNow)

	assert.Equal(t, 1, res.Counts.ByStatus[models.StatusTodo])
	assert.Equal(t, 1, res.Counts.ByStatus[models.StatusInProgress])
}

func TestBucketClassification(t *testing.T) {
	cases := []struct {
		name    string
		task    models.Task
		bucket  DateBucket
		matches bool
	}{
		{"no due date only matches all", models.Task{Status: models.StatusTodo}, BucketToday, false},
		{"no due date matches all bucket", models.Task{Status: models.StatusTodo}, BucketAll, true},
		{"due yesterday is overdue", models.Task{Status: models.StatusTodo, DueDate: dayMillis(-1)}, BucketOverdue, true},
		{"done tasks never overdue", models.Task{Status: models.StatusDone, DueDate: dayMillis(-1)}, BucketOverdue, false},
		{"due earlier today not overdue", models.Task{Status: models.StatusTodo, DueDate: testNow.Add(-2 * time.Hour).UnixMilli()}, BucketOverdue, false},
		{"due today matches today", models.Task{Status: models.StatusTodo, DueDate: testNow.UnixMilli()}, BucketToday, true},
		{"due tomorrow not today", models.Task{Status: models.StatusTodo, DueDate: dayMillis(1)}, BucketToday, false},
		{"due this week matches week", models.Task{Status: models.StatusTodo, DueDate: dayMillis(2)}, BucketWeek, true},
		{"due next week not this week", models.Task{Status: models.StatusTodo, DueDate: dayMillis(7)}, BucketWeek, false},
		{"due this month matches month", models.Task{Status: models.StatusTodo, DueDate: dayMillis(20)}, BucketMonth, true},
		{"due next month not this month", models.Task{Status: models.StatusTodo, DueDate: dayMillis(40)}, BucketMonth, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.matches, matchesBucket(tc.task, tc.bucket, testNow))
		})
	}
}

func TestWeekStartsOnSunday(t *testing.T) {
	start, end := weekRange(testNow)

	// 2026-09-02 is a Wednesday; its week runs Sunday Aug 30 through the
	// last millisecond of Saturday Sep 5
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC).UnixMilli(), start)
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC).UnixMilli()-1, end)
}

func TestCompletedOnlyStage(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Status: models.StatusDone},
		{ID: "b", Status: models.StatusTodo},
	}

	res := Apply(tasks, Selection{CompletedOnly: true, Bucket: BucketAll}, testNow)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "a", res.Tasks[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", ProjectID: "p1", Status: models.StatusTodo},
		{ID: "b", ProjectID: "p2", Status: models.StatusTodo},
	}

	Apply(tasks, Selection{ProjectID: "p2", Bucket: BucketAll}, testNow)

	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
}

func TestByStatusAndCountByProject(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", ProjectID: "p1", Status: models.StatusTodo},
		{ID: "b", ProjectID: "p1", Status: models.StatusDone},
		{ID: "c", ProjectID: "p2", Status: models.StatusTodo},
	}

	todo := ByStatus(tasks, models.StatusTodo)
	require.Len(t, todo, 2)

	counts := CountByProject(tasks)
	assert.Equal(t, 2, counts["p1"])
	assert.Equal(t, 1, counts["p2"])
}

func TestIsDueSoon(t *testing.T) {
	assert.True(t, IsDueSoon(testNow.Add(24*time.Hour).UnixMilli(), testNow))
	assert.False(t, IsDueSoon(testNow.Add(72*time.Hour).UnixMilli(), testNow))
	assert.False(t, IsDueSoon(testNow.Add(-time.Hour).UnixMilli(), testNow))
	assert.False(t, IsDueSoon(0, testNow))
}
