package scale

import (
	"fmt"
	"time"

	"github.com/peregrine-human-data/datagen/internal/config"
	"github.com/peregrine-human-data/datagen/internal/entity"
)

var testToday = time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

func mustCustomers() map[int]config.Customer {
	customers, err := config.LoadCustomers()
	if err != nil {
		panic(err)
	}
	return customers
}

// testTaskers builds an active roster covering every customer's domain focus,
// so every generated project has a non-empty eligible pool.
func testTaskers(customers map[int]config.Customer, perCustomer int) []entity.Tasker {
	var taskers []entity.Tasker
	id := 1
	for _, customerID := range sortedCustomerIDs(customers) {
		cust := customers[customerID]
		for i := 0; i < perCustomer; i++ {
			taskers = append(taskers, entity.Tasker{
				ID:             id,
				FirstName:      fmt.Sprintf("Tasker%d", id),
				LastName:       cust.Name,
				SubdomainIDs:   cust.DomainFocus,
				HoursAvailable: 30,
				HourlyRate:     45,
				Status:         "active",
			})
			id++
		}
	}
	return taskers
}

// testProject is an open-ended active project spanning the whole growth curve.
func testProject(id, customerID int, extID string) entity.Project {
	return entity.Project{
		ID:                id,
		CustomerID:        customerID,
		ContractID:        1,
		SPLID:             1,
		ExternalName:      fmt.Sprintf("Project-%d", id),
		InternalName:      fmt.Sprintf("project %d", id),
		StartDate:         time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		Budget:            1_000_000,
		BillingRate:       100,
		SubdomainIDs:      []int{1, 2},
		Status:            "active",
		ExternalProjectID: extID,
	}
}

// testRoster builds n members assigned at curve start and never removed.
func testRoster(prefix string, n int) []RosterMember {
	members := make([]RosterMember, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, RosterMember{
			TaskerID:     i,
			ExternalID:   fmt.Sprintf("%s%04d", prefix, i),
			Name:         fmt.Sprintf("Worker %d", i),
			AssignedDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return members
}
