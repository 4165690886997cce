package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

func TestContractsDeterministic(t *testing.T) {
	customers := mustCustomers()
	a := NewPHDGenerator(42, 0.01, customers, testToday, nil).Contracts()
	b := NewPHDGenerator(42, 0.01, customers, testToday, nil).Contracts()
	require.Equal(t, a, b)

	c := NewPHDGenerator(43, 0.01, customers, testToday, nil).Contracts()
	assert.NotEqual(t, a, c)
}

func TestContractsShape(t *testing.T) {
	customers := mustCustomers()
	contracts := NewPHDGenerator(42, 0.01, customers, testToday, nil).Contracts()

	wantTotal := 0
	for _, n := range contractCounts {
		wantTotal += n
	}
	require.Len(t, contracts, wantTotal)

	byCustomer := make(map[int][]entity.Contract)
	for _, c := range contracts {
		byCustomer[c.CustomerID] = append(byCustomer[c.CustomerID], c)
	}

	for customerID, cs := range byCustomer {
		cust := customers[customerID]
		require.Len(t, cs, contractCounts[customerID])

		// The trailing contracts are the active book of business.
		for _, c := range cs[len(cs)-activeContractsPerCustomer:] {
			assert.Equal(t, entity.ContractActive, c.Status)
			assert.Nil(t, c.EndDate)
		}
		for _, c := range cs[:len(cs)-activeContractsPerCustomer] {
			assert.Contains(t, []string{
				entity.ContractCompleted, entity.ContractCanceled, entity.ContractInactive,
			}, c.Status)
			require.NotNil(t, c.EndDate)
		}

		for _, c := range cs {
			assert.GreaterOrEqual(t, c.TakeRate, cust.TakeRateLo)
			assert.LessOrEqual(t, c.TakeRate, cust.TakeRateHi)
			assert.GreaterOrEqual(t, c.Budget, 200_000.0)
			onboarding := time.Date(cust.StartQuarter.Year, time.Month(cust.StartQuarter.Month), 1, 0, 0, 0, 0, time.UTC)
			assert.False(t, c.StartDate.Before(onboarding), "contract starts before customer onboarding")
		}
	}
}

func TestActiveContractBudgetsTrackARR(t *testing.T) {
	customers := mustCustomers()
	contracts := NewPHDGenerator(42, 0.01, customers, testToday, nil).Contracts()

	for _, c := range contracts {
		if c.Status != entity.ContractActive {
			continue
		}
		cust := customers[c.CustomerID]
		target := cust.RevenueShare * config.PeakARR * 1_000_000 / activeContractsPerCustomer
		net := c.Budget * c.TakeRate
		// Sized within the ±15% jitter band, plus rounding slack.
		assert.GreaterOrEqual(t, net, target*0.85-1000, "customer %d", c.CustomerID)
		assert.LessOrEqual(t, net, target*1.15+1000, "customer %d", c.CustomerID)
	}
}

func TestProjectsWithinContracts(t *testing.T) {
	customers := mustCustomers()
	g := NewPHDGenerator(42, 0.01, customers, testToday, nil)
	contracts := g.Contracts()
	projects := g.Projects(contracts)

	require.NotEmpty(t, projects)
	byID := make(map[int]entity.Contract)
	for _, c := range contracts {
		byID[c.ID] = c
	}

	for _, p := range projects {
		contract := byID[p.ContractID]
		cust := customers[p.CustomerID]

		assert.False(t, p.StartDate.Before(contract.StartDate))
		assert.False(t, p.StartDate.After(contract.StartDate.AddDate(0, 0, 21)))
		if contract.EndDate == nil {
			assert.Nil(t, p.EndDate)
		} else {
			require.NotNil(t, p.EndDate)
			assert.False(t, p.EndDate.After(*contract.EndDate))
		}

		require.GreaterOrEqual(t, len(p.SubdomainIDs), 1)
		assert.LessOrEqual(t, len(p.SubdomainIDs), 5)
		assert.IsIncreasing(t, p.SubdomainIDs)
		for _, sid := range p.SubdomainIDs {
			assert.Contains(t, cust.DomainFocus, sid)
		}

		assert.Contains(t, []string{"active", "staffing", "paused", "completed", "cancelled"}, p.Status)
		assert.Positive(t, p.Budget)
		assert.GreaterOrEqual(t, p.BillingRate, cust.BillingRateLo)
		assert.LessOrEqual(t, p.BillingRate, cust.BillingRateHi)
	}
}

func TestProjectExternalIDsByPlatform(t *testing.T) {
	customers := mustCustomers()
	g := NewPHDGenerator(42, 0.01, customers, testToday, nil)
	projects := g.Projects(g.Contracts())

	for _, p := range projects {
		cust := customers[p.CustomerID]
		switch p.CustomerID {
		case config.CustomerMeta:
			assert.Regexp(t, `^proj_srt_[0-9a-f]{8}$`, p.ExternalProjectID)
		case config.CustomerOpenAI:
			assert.Regexp(t, `^proj_f_[0-9a-f]{8}$`, p.ExternalProjectID)
		default:
			assert.Equal(t, cust.BaseID, p.ExternalProjectID)
		}
	}
}

func TestAssignmentsRespectProjectWindows(t *testing.T) {
	customers := mustCustomers()
	g := NewPHDGenerator(42, 0.01, customers, testToday, nil)
	projects := g.Projects(g.Contracts())
	taskers := testTaskers(customers, 40)
	assignments := g.Assignments(projects, taskers)

	require.NotEmpty(t, assignments)
	byID := make(map[int]entity.Project)
	for _, p := range projects {
		byID[p.ID] = p
	}

	for _, a := range assignments {
		p := byID[a.ProjectID]
		projEnd := p.EndOrDefault(testToday)

		assert.False(t, a.AssignedDate.Before(p.StartDate))
		assert.False(t, a.AssignedDate.After(p.StartDate.AddDate(0, 0, 30)))

		if a.Status == "removed" {
			require.NotNil(t, a.RemovedDate)
			assert.False(t, a.RemovedDate.Before(a.AssignedDate))
			assert.False(t, a.RemovedDate.After(projEnd))
			assert.NotEmpty(t, a.RemovalReason)
		} else {
			assert.Equal(t, "active", a.Status)
			assert.Nil(t, a.RemovedDate)
			assert.Empty(t, a.RemovalReason)
		}

		require.NotEmpty(t, a.Roles)
		for _, role := range a.Roles {
			assert.Contains(t, []string{"tasker", "reviewer"}, role)
		}
	}
}

func TestAssignmentsMinimumStaffing(t *testing.T) {
	customers := mustCustomers()
	g := NewPHDGenerator(42, 0.01, customers, testToday, nil)
	projects := g.Projects(g.Contracts())
	taskers := testTaskers(customers, 40)
	assignments := g.Assignments(projects, taskers)

	perProject := make(map[int]int)
	for _, a := range assignments {
		perProject[a.ProjectID]++
	}
	// Even at 1% scale every staffable project keeps a skeleton crew.
	for _, p := range projects {
		assert.GreaterOrEqual(t, perProject[p.ID], 3, "project %d", p.ID)
	}
}

func TestAssignmentsSkipDisjointTaskers(t *testing.T) {
	customers := mustCustomers()
	g := NewPHDGenerator(42, 0.01, customers, testToday, nil)
	projects := g.Projects(g.Contracts())

	taskers := []entity.Tasker{
		{ID: 1, FirstName: "No", LastName: "Overlap", SubdomainIDs: []int{9999}, Status: "active"},
		{ID: 2, FirstName: "In", LastName: "Active", SubdomainIDs: []int{1, 2, 3}, Status: "inactive"},
	}
	assignments := g.Assignments(projects, taskers)
	assert.Empty(t, assignments)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Q3 2024", periodLabel(2024, 7, 4))
	assert.Equal(t, "H1 2025", periodLabel(2025, 2, 6))
	assert.Equal(t, "H2 2025", periodLabel(2025, 8, 7))
	assert.Equal(t, "2024-2025", periodLabel(2024, 6, 12))
}
