// Package availability decides which trainers are free for a schedule.
//
// Every function here is pure: it works on a snapshot of schedules the
// caller has already fetched and never performs I/O.
package availability

import (
	"time"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// Candidate is the schedule that needs a trainer
type Candidate struct {
	TrainerID       int64 // currently assigned trainer, never suggested
	StartTime       time.Time
	DurationMinutes int
	RequiredRole    domain.TrainerRole
}

// CandidateFor builds a Candidate from an existing schedule
func CandidateFor(s domain.Schedule, requiredRole domain.TrainerRole) Candidate {
	return Candidate{
		TrainerID:       s.TrainerID,
		StartTime:       s.StartTime,
		DurationMinutes: s.DurationMinutes,
		RequiredRole:    requiredRole,
	}
}

// IsAvailable reports whether a trainer with the given schedules is free for
// [start, start+duration). Terminal schedules are ignored.
//
// Both intervals are extended by buffer on the end side only, so two schedules
// separated by at least buffer never conflict:
//
//	existing 10:00-10:30, buffer 15m, candidate at 10:45 -> free
//	existing 10:00-10:30, buffer 15m, candidate at 10:44 -> busy
func IsAvailable(schedules []domain.Schedule, start time.Time, durationMinutes int, buffer time.Duration) bool {
	return len(Conflicts(schedules, start, durationMinutes, buffer)) == 0
}

// Conflicts returns the live schedules that overlap the candidate window,
// in input order
func Conflicts(schedules []domain.Schedule, start time.Time, durationMinutes int, buffer time.Duration) []domain.Schedule {
	candidate := domain.Schedule{StartTime: start, DurationMinutes: durationMinutes}
	candidateGuardedEnd := candidate.GuardedEnd(buffer)

	var conflicts []domain.Schedule
	for i := range schedules {
		existing := &schedules[i]
		if !existing.IsLive() {
			continue
		}

		// Strict inequalities: touching guarded intervals do not overlap
		if start.Before(existing.GuardedEnd(buffer)) && candidateGuardedEnd.After(existing.StartTime) {
			conflicts = append(conflicts, *existing)
		}
	}

	return conflicts
}

// RoleCompatible reports whether a trainer with role candidate may take a
// schedule that requires role required
func RoleCompatible(required, candidate domain.TrainerRole) bool {
	switch required {
	case domain.RoleStaff:
		return candidate == domain.RoleTrainer || candidate == domain.RoleStaff
	default:
		return candidate == domain.RoleTrainer
	}
}

// IsEligible checks every filter except the time check
func IsEligible(c Candidate, t domain.Trainer) bool {
	return t.ID != c.TrainerID && t.IsActive() && RoleCompatible(c.RequiredRole, t.Role)
}

// AvailableTrainers filters pool down to trainers that may take the candidate
// schedule. The result keeps the relative order of pool. A trainer missing
// from byTrainer is treated as having no schedules.
func AvailableTrainers(
	c Candidate,
	pool []domain.Trainer,
	byTrainer map[int64][]domain.Schedule,
	buffer time.Duration,
) []domain.Trainer {
	result := make([]domain.Trainer, 0, len(pool))

	for _, t := range pool {
		if !IsEligible(c, t) {
			continue
		}
		if !IsAvailable(byTrainer[t.ID], c.StartTime, c.DurationMinutes, buffer) {
			continue
		}
		result = append(result, t)
	}

	return result
}

// Resolver binds the buffer so callers do not pass it around
type Resolver struct {
	buffer time.Duration
}

// NewResolver creates a resolver; a negative buffer is treated as zero
func NewResolver(buffer time.Duration) *Resolver {
	if buffer < 0 {
		buffer = 0
	}
	return &Resolver{buffer: buffer}
}

func (r *Resolver) Buffer() time.Duration {
	return r.buffer
}

func (r *Resolver) IsAvailable(schedules []domain.Schedule, start time.Time, durationMinutes int) bool {
	return IsAvailable(schedules, start, durationMinutes, r.buffer)
}

func (r *Resolver) Conflicts(schedules []domain.Schedule, start time.Time, durationMinutes int) []domain.Schedule {
	return Conflicts(schedules, start, durationMinutes, r.buffer)
}

func (r *Resolver) AvailableTrainers(c Candidate, pool []domain.Trainer, byTrainer map[int64][]domain.Schedule) []domain.Trainer {
	return AvailableTrainers(c, pool, byTrainer, r.buffer)
}
