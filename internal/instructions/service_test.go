package instructions

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

func workbookProject(customerID int) entity.Project {
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	return entity.Project{
		ID:           7,
		CustomerID:   customerID,
		ContractID:   3,
		ExternalName: "Atlas-Ranking-v2",
		InternalName: "meta coding eval",
		StartDate:    time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      &end,
		Budget:       250_000,
		BillingRate:  95,
		SubdomainIDs: []int{1, 2, 5},
		Status:       "active",
	}
}

func TestBuildWorkbook(t *testing.T) {
	customers, err := config.LoadCustomers()
	require.NoError(t, err)
	b := NewBuilder(customers, nil)

	data, err := b.BuildWorkbook(workbookProject(config.CustomerMeta))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Task Steps", "Rubric"}, f.GetSheetList())

	name, err := f.GetCellValue("Overview", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Atlas-Ranking-v2", name)

	client, err := f.GetCellValue("Overview", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Meta", client)

	// SRT rubric is the five-point quality scale.
	label, err := f.GetCellValue("Rubric", "C4")
	require.NoError(t, err)
	assert.Equal(t, "Exceptional", label)
}

func TestBuildWorkbookRubricPerPlatform(t *testing.T) {
	customers, err := config.LoadCustomers()
	require.NoError(t, err)
	b := NewBuilder(customers, nil)

	data, err := b.BuildWorkbook(workbookProject(config.CustomerGoogle))
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Rubric", "C4")
	require.NoError(t, err)
	assert.Equal(t, "Pass", label)
}

func TestBuildWorkbookUnknownCustomer(t *testing.T) {
	customers, err := config.LoadCustomers()
	require.NoError(t, err)
	b := NewBuilder(customers, nil)

	_, err = b.BuildWorkbook(workbookProject(999))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown customer")
}
