package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

func fairtableFixture() (map[int]config.Customer, []entity.Project, map[int][]RosterMember) {
	customers := mustCustomers()
	projects := []entity.Project{
		testProject(1, config.CustomerGoogle, "base_google"),
		testProject(2, config.CustomerXAI, "base_xai"),
		testProject(3, config.CustomerAnthropic, "base_anthropic"),
	}
	// Fairtable projects start when their customer onboards, not at curve
	// launch.
	projects[1].StartDate = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	projects[2].StartDate = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	rosters := map[int][]RosterMember{
		1: testRoster("", 4),
		2: testRoster("", 4),
		3: testRoster("", 4),
	}
	return customers, projects, rosters
}

func TestFairtableGenerateDeterministic(t *testing.T) {
	customers, projects, rosters := fairtableFixture()

	t1, s1, r1 := NewFairtableGenerator(42, testToday, nil).Generate(customers, projects, rosters, 0.0005)
	t2, s2, r2 := NewFairtableGenerator(42, testToday, nil).Generate(customers, projects, rosters, 0.0005)

	assert.Equal(t, t1, t2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestFairtableGenerateShape(t *testing.T) {
	customers, projects, rosters := fairtableFixture()
	tasks, submissions, reviews := NewFairtableGenerator(42, testToday, nil).Generate(customers, projects, rosters, 0.0005)

	require.NotEmpty(t, tasks)
	require.NotEmpty(t, submissions)
	require.NotEmpty(t, reviews)

	rosterNames := make(map[string]bool)
	for _, roster := range rosters {
		for _, m := range roster {
			rosterNames[m.Name] = true
		}
	}

	bases := make(map[string]bool)
	taskByID := make(map[string]FairtableTask, len(tasks))
	for _, task := range tasks {
		assert.Regexp(t, `^rec_[0-9a-f]{12}$`, task.RecordID)
		assert.Contains(t, []string{"base_google", "base_xai", "base_anthropic"}, task.BaseID)
		assert.NotEmpty(t, task.TaskName)
		assert.Contains(t, []string{"todo", "in_progress", "done", "reviewed"}, task.Status)
		assert.GreaterOrEqual(t, task.AssignedTo, 1)
		if task.DueDate != nil {
			assert.LessOrEqual(t, task.DueDate.Day(), 28)
			assert.Equal(t, time.Time{}.Hour(), task.DueDate.Hour(), "due dates are date-only")
			assert.Equal(t, time.UTC, task.DueDate.Location())
		}
		bases[task.BaseID] = true
		taskByID[task.RecordID] = task
	}
	// All three customers produce work.
	assert.Len(t, bases, 3)

	subByID := make(map[string]FairtableSubmission, len(submissions))
	for _, sub := range submissions {
		assert.Regexp(t, `^rec_[0-9a-f]{12}$`, sub.RecordID)
		task, ok := taskByID[sub.TaskRecordID]
		require.True(t, ok, "submission references unknown task")
		assert.Equal(t, task.BaseID, sub.BaseID)
		assert.Contains(t, []string{"done", "reviewed"}, task.Status,
			"open tasks must not have submissions")
		assert.Contains(t, []string{"pending", "approved", "rejected"}, sub.Status)
		assert.GreaterOrEqual(t, sub.HoursLogged, 0.25)
		assert.LessOrEqual(t, sub.HoursLogged, 6.0)
		subByID[sub.RecordID] = sub
	}

	for _, r := range reviews {
		assert.Regexp(t, `^rec_[0-9a-f]{12}$`, r.RecordID)
		sub, ok := subByID[r.SubmissionRecordID]
		require.True(t, ok, "review references unknown submission")
		assert.Equal(t, sub.BaseID, r.BaseID)
		assert.True(t, rosterNames[r.ReviewedBy], "reviewer recorded by display name")
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
		switch {
		case r.Score >= 70:
			assert.Equal(t, "pass", r.Status)
		case r.Score >= 50:
			assert.Equal(t, "conditional_pass", r.Status)
		default:
			assert.Equal(t, "fail", r.Status)
		}
		assert.NotEmpty(t, r.Comments)
	}
}
