package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyMultiplier(t *testing.T) {
	// Peak month maps to 1.0, launch month to its fraction of peak.
	assert.InDelta(t, 1.0, MonthlyMultiplier(2026, 2), 1e-9)
	assert.Greater(t, MonthlyMultiplier(2024, 6), MonthlyMultiplier(2023, 12))

	// Months outside the curve contribute nothing.
	assert.Equal(t, 0.0, MonthlyMultiplier(2022, 1))
	assert.Equal(t, 0.0, MonthlyMultiplier(2026, 3))
}

func TestActiveMonthsOrderedAndBounded(t *testing.T) {
	months := ActiveMonths()
	require.NotEmpty(t, months)

	assert.Equal(t, Month{2023, 7}, months[0])
	assert.Equal(t, Month{2026, 2}, months[len(months)-1])

	for i := 1; i < len(months); i++ {
		assert.True(t, months[i-1].Before(months[i]),
			"months must be strictly increasing at index %d", i)
	}
}

func TestMonthComparisons(t *testing.T) {
	assert.True(t, Month{2023, 12}.Before(Month{2024, 1}))
	assert.False(t, Month{2024, 1}.Before(Month{2024, 1}))

	assert.True(t, Month{2024, 1}.AtOrAfter(Month{2024, 1}))
	assert.True(t, Month{2024, 2}.AtOrAfter(Month{2024, 1}))
	assert.False(t, Month{2023, 12}.AtOrAfter(Month{2024, 1}))
}
