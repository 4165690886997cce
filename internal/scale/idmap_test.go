package scale

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

func mappingFixture() ([]entity.Project, []entity.Assignment) {
	projects := []entity.Project{
		testProject(1, config.CustomerMeta, "proj_srt_aaaaaaaa"),
		testProject(2, config.CustomerOpenAI, "proj_f_bbbbbbbb"),
		testProject(3, config.CustomerGoogle, "base_google"),
	}
	assigned := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	assignments := []entity.Assignment{
		{ID: 1, TaskerID: 30, ProjectID: 1, AssignedDate: assigned, Status: "active"},
		{ID: 2, TaskerID: 10, ProjectID: 1, AssignedDate: assigned, Status: "active"},
		{ID: 3, TaskerID: 30, ProjectID: 1, AssignedDate: assigned, Status: "active"}, // dup tasker
		{ID: 4, TaskerID: 20, ProjectID: 2, AssignedDate: assigned, Status: "active"},
		{ID: 5, TaskerID: 40, ProjectID: 3, AssignedDate: assigned, Status: "active"},
	}
	return projects, assignments
}

func TestSRTMappings(t *testing.T) {
	projects, assignments := mappingFixture()
	mappings := SRTMappings(42, projects, assignments)

	require.Len(t, mappings, 2)
	// First-assignment order, duplicates collapsed, other customers excluded.
	assert.Equal(t, 30, mappings[0].TaskerID)
	assert.Equal(t, 10, mappings[1].TaskerID)
	for _, m := range mappings {
		assert.Regexp(t, `^srt_meta_[0-9a-z]{8}$`, m.ExternalID)
	}

	again := SRTMappings(42, projects, assignments)
	assert.Equal(t, mappings, again)
	assert.NotEqual(t, mappings[0].ExternalID, SRTMappings(7, projects, assignments)[0].ExternalID)
}

func TestFeatherMappings(t *testing.T) {
	projects, assignments := mappingFixture()
	mappings := FeatherMappings(42, projects, assignments)

	require.Len(t, mappings, 1)
	assert.Equal(t, 20, mappings[0].TaskerID)
	assert.Regexp(t, `^usr_[0-9a-z]{8}$`, mappings[0].ExternalID)
}

func TestWriteMappingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	srt := []IDMapping{
		{TaskerID: 30, ExternalID: "srt_meta_00000030"},
		{TaskerID: 10, ExternalID: "srt_meta_00000010"},
	}
	feather := []IDMapping{{TaskerID: 20, ExternalID: "usr_00000020"}}

	require.NoError(t, WriteMappingFiles(dir, srt, feather))

	f, err := os.Open(filepath.Join(dir, "meta_id_pairing.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"peregrine_tasker_id", "srt_external_id"}, rows[0])
	// Rows come out sorted by tasker id regardless of input order.
	assert.Equal(t, []string{"10", "srt_meta_00000010"}, rows[1])
	assert.Equal(t, []string{"30", "srt_meta_00000030"}, rows[2])

	g, err := os.Open(filepath.Join(dir, "feather_id_pairing.csv"))
	require.NoError(t, err)
	defer g.Close()
	featherRows, err := csv.NewReader(g).ReadAll()
	require.NoError(t, err)
	require.Len(t, featherRows, 2)
	assert.Equal(t, []string{"peregrine_tasker_id", "feather_external_id"}, featherRows[0])
}
