package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peregrine-human-data/datagen/internal/config"
)

func TestRunRejectsBadScale(t *testing.T) {
	customers, err := config.LoadCustomers()
	require.NoError(t, err)
	env := &config.Env{}
	env.PHDURL = "postgres://localhost/phd"
	svc := NewScaleService(env, customers, nil)

	for _, scale := range []float64{0, -0.5, 1.5} {
		_, err := svc.Run(context.Background(), ScaleOptions{Scale: scale})
		require.Error(t, err, "scale %v", scale)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestRunRequiresPHDURL(t *testing.T) {
	customers, err := config.LoadCustomers()
	require.NoError(t, err)
	svc := NewScaleService(&config.Env{}, customers, nil)

	_, err = svc.Run(context.Background(), ScaleOptions{Scale: 0.01})
	assert.ErrorIs(t, err, ErrMissingPHDURL)
}

func TestStepResultTotal(t *testing.T) {
	r := StepResult{
		Name: "SRT Tool (Meta)",
		Metrics: []Metric{
			{"annotations", 100},
			{"completions", 80},
			{"reviews", 60},
		},
		Elapsed: time.Second,
	}
	assert.Equal(t, 240, r.Total())
}

func TestRunIDStable(t *testing.T) {
	customers, err := config.LoadCustomers()
	require.NoError(t, err)
	svc := NewScaleService(&config.Env{}, customers, nil)
	assert.NotEmpty(t, svc.RunID())
	assert.Equal(t, svc.RunID(), svc.RunID())
}
