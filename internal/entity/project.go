package entity

import "time"

// Project is a unit of work under a contract, scoped to a subdomain set.
// ExternalProjectID links the project to its downstream platform: a hashed
// id for SRT/Feather customers, the customer's fixed base id on Fairtable.
type Project struct {
	ID                int
	CustomerID        int
	ContractID        int
	SPLID             int
	ExternalName      string
	InternalName      string
	StartDate         time.Time
	EndDate           *time.Time
	Budget            float64
	BillingRate       float64
	SubdomainIDs      []int
	Status            string
	ExternalProjectID string
}

// EndOrDefault returns the project end date, or fallback when open-ended.
func (p Project) EndOrDefault(fallback time.Time) time.Time {
	if p.EndDate != nil {
		return *p.EndDate
	}
	return fallback
}
