package taskergen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42).Generate(21, 100)
	b := NewGenerator(42).Generate(21, 100)
	require.Equal(t, a, b)

	c := NewGenerator(7).Generate(21, 100)
	assert.NotEqual(t, a, c)
}

func TestGenerateIDsAndEmails(t *testing.T) {
	taskers := NewGenerator(42).Generate(21, 500)
	require.Len(t, taskers, 500)

	emails := make(map[string]bool, len(taskers))
	for i, tk := range taskers {
		assert.Equal(t, 21+i, tk.ID)
		require.Contains(t, tk.Email, "@")
		assert.False(t, emails[tk.Email], "duplicate email %s", tk.Email)
		emails[tk.Email] = true

		// Email local parts never carry apostrophes, hyphens, or spaces.
		local := tk.Email[:strings.Index(tk.Email, "@")]
		assert.NotContains(t, local, "'")
		assert.NotContains(t, local, "-")
		assert.NotContains(t, local, " ")
		assert.Equal(t, strings.ToLower(local), local)
	}
}

func TestGenerateProfileShape(t *testing.T) {
	taskers := NewGenerator(42).Generate(21, 500)

	hireFloor := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	inactive := 0
	for _, tk := range taskers {
		assert.NotEmpty(t, tk.FirstName)
		assert.NotEmpty(t, tk.LastName)
		assert.NotEmpty(t, tk.City)
		assert.NotEmpty(t, tk.Country)
		assert.NotEmpty(t, tk.Timezone)
		assert.NotEmpty(t, tk.ExternalJobTitle)
		assert.NotEmpty(t, tk.SubdomainIDs)

		assert.False(t, tk.HireDate.Before(hireFloor))
		assert.False(t, tk.HireDate.After(hireFloor.AddDate(0, 0, 1000)))

		assert.GreaterOrEqual(t, tk.HourlyRate, 25.0)
		assert.LessOrEqual(t, tk.HourlyRate, 95.0)

		switch tk.Status {
		case "active":
			assert.GreaterOrEqual(t, tk.HoursAvailable, 10.0)
			assert.LessOrEqual(t, tk.HoursAvailable, 40.0)
		case "inactive":
			assert.Zero(t, tk.HoursAvailable)
			inactive++
		default:
			t.Fatalf("unexpected status %q", tk.Status)
		}

		assert.Contains(t, tk.Languages, "English")
		require.Len(t, tk.LanguageProficiency, len(tk.Languages))
		for _, lang := range tk.Languages {
			assert.Contains(t, tk.LanguageProficiency, lang)
		}
	}

	// ~8% inactive; allow a generous band for sampling noise.
	assert.Greater(t, inactive, 10)
	assert.Less(t, inactive, 100)
}
