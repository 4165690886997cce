package entity

import "time"

// Assignment links one tasker to one project.
type Assignment struct {
	ID            int
	TaskerID      int
	ProjectID     int
	AssignedDate  time.Time
	RemovedDate   *time.Time
	Status        string // active | removed
	RemovalReason string
	Roles         []string
}
