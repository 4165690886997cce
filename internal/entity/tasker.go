package entity

// Tasker is a pre-existing worker row in the PHD database. The scale
// generators read taskers but never create them.
type Tasker struct {
	ID             int
	FirstName      string
	LastName       string
	SubdomainIDs   []int
	HoursAvailable float64
	HourlyRate     float64
	Status         string
}

// FullName returns the display name used by platforms without an
// external identifier namespace.
func (t Tasker) FullName() string {
	return t.FirstName + " " + t.LastName
}
