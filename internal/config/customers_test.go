package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCustomersDefaults(t *testing.T) {
	customers, err := LoadCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 5)

	meta := customers[CustomerMeta]
	assert.Equal(t, "Meta", meta.Name)
	assert.Equal(t, PlatformSRT, meta.Platform)
	assert.Empty(t, meta.BaseID)

	// Fairtable customers carry a base id; the others must not.
	for _, id := range []int{CustomerGoogle, CustomerXAI, CustomerAnthropic} {
		assert.Equal(t, PlatformFairtable, customers[id].Platform)
		assert.NotEmpty(t, customers[id].BaseID)
	}
}

func TestValidateSharesRejectsDrift(t *testing.T) {
	customers := defaultCustomers()
	require.NoError(t, ValidateShares(customers))

	c := customers[CustomerMeta]
	c.RevenueShare += 0.05
	customers[CustomerMeta] = c

	err := ValidateShares(customers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revenue shares")
}

func TestLoadCustomersFile(t *testing.T) {
	valid := `[
	  {
	    "id": 1, "name": "Meta", "platform": "SRT Tool",
	    "billing_cycle_id": 2, "primary_spl_id": 1,
	    "start_quarter": {"Year": 2023, "Month": 7},
	    "billing_rate_lo": 85, "billing_rate_hi": 130,
	    "take_rate_lo": 0.28, "take_rate_hi": 0.32,
	    "revenue_share": 1.0,
	    "task_types": ["preference_ranking"],
	    "domain_focus": [1, 2, 3]
	  }
	]`
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))

	customers, err := LoadCustomersFile(path)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Meta", customers[1].Name)
	assert.Equal(t, Month{2023, 7}, customers[1].StartQuarter)
}

func TestLoadCustomersFileRejectsBadPlatform(t *testing.T) {
	bad := `[
	  {
	    "id": 1, "name": "Meta", "platform": "NotAPlatform",
	    "billing_cycle_id": 2,
	    "start_quarter": {"Year": 2023, "Month": 7},
	    "billing_rate_lo": 85, "billing_rate_hi": 130,
	    "take_rate_lo": 0.28, "take_rate_hi": 0.32,
	    "revenue_share": 1.0,
	    "task_types": ["preference_ranking"],
	    "domain_focus": [1]
	  }
	]`
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := LoadCustomersFile(path)
	require.Error(t, err)
}

func TestLoadCustomersFileRejectsDuplicateIDs(t *testing.T) {
	dup := `[
	  {
	    "id": 1, "name": "A", "platform": "Feather",
	    "billing_cycle_id": 1,
	    "start_quarter": {"Year": 2023, "Month": 7},
	    "billing_rate_lo": 85, "billing_rate_hi": 130,
	    "take_rate_lo": 0.28, "take_rate_hi": 0.32,
	    "revenue_share": 0.5,
	    "task_types": ["code_review"],
	    "domain_focus": [1]
	  },
	  {
	    "id": 1, "name": "B", "platform": "Feather",
	    "billing_cycle_id": 1,
	    "start_quarter": {"Year": 2023, "Month": 7},
	    "billing_rate_lo": 85, "billing_rate_hi": 130,
	    "take_rate_lo": 0.28, "take_rate_hi": 0.32,
	    "revenue_share": 0.5,
	    "task_types": ["code_review"],
	    "domain_focus": [1]
	  }
	]`
	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte(dup), 0o644))

	_, err := LoadCustomersFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate customer id")
}
