package domain

import "time"

// Reassignment запись журнала переназначений
type Reassignment struct {
	ID              int64
	ScheduleID      int64
	FromTrainerID   int64
	ToTrainerID     int64
	ActorID         int64
	RequestID       string
	StartTime       time.Time
	DurationMinutes int
	CreatedAt       time.Time
}
