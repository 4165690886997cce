package images

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peregrine-human-data/datagen/internal/entity"
)

func imageTaskers(n int) []entity.Tasker {
	taskers := make([]entity.Tasker, 0, n)
	for i := 1; i <= n; i++ {
		taskers = append(taskers, entity.Tasker{
			ID:        i,
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Status:    "active",
		})
	}
	return taskers
}

func TestPlanJobsDeterministic(t *testing.T) {
	taskers := imageTaskers(200)
	a := PlanJobs(42, taskers)
	b := PlanJobs(42, taskers)
	require.Equal(t, a, b)

	c := PlanJobs(7, taskers)
	assert.NotEqual(t, a, c)
}

func TestPlanJobsStyleDistribution(t *testing.T) {
	taskers := imageTaskers(1000)
	jobs := PlanJobs(42, taskers)
	require.Len(t, jobs, len(taskers))

	styleNames := make(map[string]bool, len(photoStyles))
	for _, s := range photoStyles {
		styleNames[s.name] = true
	}

	noImage := 0
	for _, job := range jobs {
		require.True(t, styleNames[job.Style], "unknown style %q", job.Style)
		if job.Style == "no_image" {
			assert.Empty(t, job.Prompt)
			noImage++
		} else {
			assert.Contains(t, job.Prompt, job.Tasker.FullName())
		}
	}

	// Roughly 30% of taskers get no photo.
	assert.Greater(t, noImage, 230)
	assert.Less(t, noImage, 370)
}

func TestRunDryRunSkipsEverything(t *testing.T) {
	// nil client and store: a dry run must never reach either.
	svc := NewService(nil, nil, nil, nil)
	jobs := PlanJobs(42, imageTaskers(50))

	result := svc.Run(context.Background(), jobs, true)
	assert.Zero(t, result.Generated)
	assert.Zero(t, result.Failed)
	assert.Equal(t, len(jobs), result.Skipped)
}
