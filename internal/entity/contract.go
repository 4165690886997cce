package entity

import "time"

// Contract statuses as stored in the PHD contracts table.
const (
	ContractActive    = "active"
	ContractCompleted = "completed"
	ContractCanceled  = "canceled"
	ContractInactive  = "inactive"
)

// Contract is a customer-scoped billing agreement.
type Contract struct {
	ID             int
	CustomerID     int
	BillingCycleID int
	Name           string
	StartDate      time.Time
	EndDate        *time.Time
	TakeRate       float64
	Budget         float64
	Status         string
}
