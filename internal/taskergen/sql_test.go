package taskergen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLString(t *testing.T) {
	assert.Equal(t, "'hello'", SQLString("hello"))
	assert.Equal(t, "'O''Brien'", SQLString("O'Brien"))
	assert.Equal(t, "NULL", SQLString(""))
}

func TestSQLIntArray(t *testing.T) {
	assert.Equal(t, "'{1,2,50}'", SQLIntArray([]int{1, 2, 50}))
	assert.Equal(t, "NULL", SQLIntArray(nil))
}

func TestSQLTextArray(t *testing.T) {
	assert.Equal(t, `'{"English","Spanish"}'`, SQLTextArray([]string{"English", "Spanish"}))
	assert.Equal(t, "NULL", SQLTextArray(nil))
}

func sqlTestTasker(id int) TaskerProfile {
	return TaskerProfile{
		ID:               id,
		FirstName:        "Siobhan",
		LastName:         "O'Brien",
		Email:            "siobhan.obrien@gmail.com",
		HireDate:         time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		AddressLine1:     "12 Main St",
		City:             "Dublin",
		Country:          "Ireland",
		Timezone:         "Europe/Dublin",
		Status:           "active",
		ExternalJobTitle: "Software Engineer",
		SubdomainIDs:     []int{1, 2},
		HoursAvailable:   30,
		HourlyRate:       45.5,
		Languages:        []string{"English"},
		LanguageProficiency: map[string]string{
			"English": "native",
		},
	}
}

func TestWriteMigration(t *testing.T) {
	taskers := []TaskerProfile{sqlTestTasker(21), sqlTestTasker(22), sqlTestTasker(23)}
	taskers[1].Email = "a@b.com"
	taskers[2].Email = "c@d.com"

	var buf bytes.Buffer
	require.NoError(t, WriteMigration(&buf, taskers, 2))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "-- Auto-generated: 3 additional taskers (IDs 21-23)"))
	// Batch size 2 splits three rows into two INSERT statements.
	assert.Equal(t, 2, strings.Count(out, "INSERT INTO taskers"))
	assert.Contains(t, out, "'O''Brien'")
	assert.Contains(t, out, "'2023-05-10'")
	assert.Contains(t, out, "30.0, 45.50")
	assert.Contains(t, out, `'{"English"}'`)
	assert.Contains(t, out, `'{"English":"native"}'`)
	assert.Contains(t, out, "SELECT setval('taskers_id_seq', (SELECT MAX(id) FROM taskers));")

	// Middle name and address line 2 were omitted, so they render as NULLs.
	assert.Contains(t, out, "'Siobhan', NULL, 'O''Brien'")
}

func TestWriteMigrationEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteMigration(&buf, nil, 100))
}
