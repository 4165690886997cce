package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

func featherFixture() (config.Customer, []entity.Project, map[int][]RosterMember) {
	customers := mustCustomers()
	projects := []entity.Project{testProject(1, config.CustomerOpenAI, "proj_f_aaaaaaaa")}
	rosters := map[int][]RosterMember{1: testRoster("usr_", 4)}
	return customers[config.CustomerOpenAI], projects, rosters
}

func TestFeatherGenerateDeterministic(t *testing.T) {
	cust, projects, rosters := featherFixture()

	t1, s1, r1 := NewFeatherGenerator(42, testToday, nil).Generate(cust, projects, rosters, 0.0005)
	t2, s2, r2 := NewFeatherGenerator(42, testToday, nil).Generate(cust, projects, rosters, 0.0005)

	assert.Equal(t, t1, t2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}

func TestFeatherGenerateShape(t *testing.T) {
	cust, projects, rosters := featherFixture()
	tasks, submissions, reviews := NewFeatherGenerator(42, testToday, nil).Generate(cust, projects, rosters, 0.0005)

	require.NotEmpty(t, tasks)
	require.NotEmpty(t, submissions)
	require.NotEmpty(t, reviews)

	taskStatus := make(map[string]string, len(tasks))
	for _, task := range tasks {
		assert.Regexp(t, `^task_f_[0-9a-f]{12}$`, task.ID)
		assert.Equal(t, "proj_f_aaaaaaaa", task.ProjectID)
		assert.NotEmpty(t, task.Title)
		assert.Contains(t, cust.TaskTypes, task.Type)
		assert.Regexp(t, `^usr_`, task.AssignedTo)
		assert.Contains(t, []string{"pending", "in_progress", "submitted", "approved", "rejected"}, task.Status)
		taskStatus[task.ID] = task.Status
	}

	subByID := make(map[string]FeatherSubmission, len(submissions))
	for _, sub := range submissions {
		assert.Regexp(t, `^sub_f_[0-9a-f]{12}$`, sub.ID)
		status, ok := taskStatus[sub.TaskID]
		require.True(t, ok, "submission references unknown task")
		assert.Contains(t, []string{"submitted", "approved", "rejected"}, status,
			"unworked tasks must not have submissions")
		assert.Contains(t, []string{"pending_review", "approved", "rejected", "revision_requested"}, sub.Status)
		assert.GreaterOrEqual(t, sub.TimeSpentSeconds, 300)
		assert.LessOrEqual(t, sub.TimeSpentSeconds, 7200)
		subByID[sub.ID] = sub
	}

	for _, r := range reviews {
		assert.Regexp(t, `^rev_f_[0-9a-f]{12}$`, r.ID)
		sub, ok := subByID[r.SubmissionID]
		require.True(t, ok, "review references unknown submission")
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
		switch {
		case r.Score >= 0.85:
			assert.Equal(t, "excellent", r.Rating)
		case r.Score >= 0.65:
			assert.Equal(t, "acceptable", r.Rating)
		case r.Score >= 0.4:
			assert.Equal(t, "needs_improvement", r.Rating)
		default:
			assert.Equal(t, "unacceptable", r.Rating)
		}
		assert.NotEmpty(t, r.Feedback)
		assert.NotEqual(t, sub.SubmittedBy, r.ReviewerID)
	}
}

func TestFeatherTitleFallback(t *testing.T) {
	rng := newRNG(1)
	// Unknown task types fall back to the rlhf_ranking title pool.
	title := featherTitle(rng, "not_a_real_type")
	assert.Contains(t, config.FeatherTaskTitles["rlhf_ranking"], title)
}
