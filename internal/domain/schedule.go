package domain

import (
	"strings"
	"time"
)

// ScheduleStatus represents the status of a trainer schedule
type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "pending"
	StatusConfirmed ScheduleStatus = "confirmed"
	StatusCompleted ScheduleStatus = "completed"
	StatusCancelled ScheduleStatus = "cancelled"
	StatusNoShow    ScheduleStatus = "no_show"
)

// IsLive returns true if a schedule with this status still occupies the trainer's time.
// An unknown status is live: only the known terminal statuses free the slot.
func (s ScheduleStatus) IsLive() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return false
	}
	return true
}

// IsValid returns true for a known status
func (s ScheduleStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ParseScheduleStatus normalizes a status coming from the backend.
// Case is ignored and dashes or spaces become underscores, so "Confirmed"
// and "no-show" are recognized. ok is false for a status outside the known set; the
// returned value is then the normalized string, which IsLive treats as live.
func ParseScheduleStatus(raw string) (status ScheduleStatus, ok bool) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if norm == "noshow" {
		norm = string(StatusNoShow)
	}

	status = ScheduleStatus(norm)
	return status, status.IsValid()
}

// ScheduleKind is derived from the notes marker, cosmetic only
type ScheduleKind string

const (
	KindSession ScheduleKind = "session"
	KindShift   ScheduleKind = "shift"
)

// Schedule is a time-boxed assignment of a trainer or staff member.
// Owned by the gym backend; this service only reads snapshots of it.
type Schedule struct {
	ID              int64
	TrainerID       int64
	StartTime       time.Time
	DurationMinutes int
	Status          ScheduleStatus
	Notes           string
}

// IsLive returns true if the schedule blocks the trainer's time
func (s *Schedule) IsLive() bool {
	return s.Status.IsLive()
}

// Duration returns the nominal length, negative durations count as zero
func (s *Schedule) Duration() time.Duration {
	if s.DurationMinutes <= 0 {
		return 0
	}
	return time.Duration(s.DurationMinutes) * time.Minute
}

// End returns the nominal end of the schedule (exclusive)
func (s *Schedule) End() time.Time {
	return s.StartTime.Add(s.Duration())
}

// GuardedEnd returns the end extended by the buffer
func (s *Schedule) GuardedEnd(buffer time.Duration) time.Time {
	return s.End().Add(buffer)
}

// Kind returns shift for standing-shift schedules and session otherwise
func (s *Schedule) Kind() ScheduleKind {
	if strings.Contains(strings.ToLower(s.Notes), ShiftMarker) {
		return KindShift
	}
	return KindSession
}
