package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

const testBuffer = domain.DefaultBufferMinutes * time.Minute

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func schedule(id, trainerID int64, start time.Time, minutes int, status domain.ScheduleStatus) domain.Schedule {
	return domain.Schedule{
		ID:              id,
		TrainerID:       trainerID,
		StartTime:       start,
		DurationMinutes: minutes,
		Status:          status,
	}
}

func TestIsAvailable_BufferBoundary(t *testing.T) {
	existing := []domain.Schedule{schedule(1, 7, at(10, 0), 30, domain.StatusConfirmed)}

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"exactly buffer after end", at(10, 45), true},
		{"one minute inside buffer", at(10, 44), false},
		{"inside booking", at(10, 15), false},
		{"guarded end touches existing start", at(9, 15), true},
		{"guarded end one minute past existing start", at(9, 16), false},
		{"well before", at(8, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(existing, tt.start, 30, testBuffer))
		})
	}
}

func TestIsAvailable_ConcreteScenario(t *testing.T) {
	existing := []domain.Schedule{
		schedule(1, 7, at(9, 0), 30, domain.StatusConfirmed),
		schedule(2, 7, at(11, 0), 60, domain.StatusPending),
	}

	assert.True(t, IsAvailable(existing, at(9, 45), 30, testBuffer))
	assert.False(t, IsAvailable(existing, at(10, 50), 30, testBuffer))
}

func TestIsAvailable_TerminalStatusesNeverBlock(t *testing.T) {
	for _, status := range []domain.ScheduleStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			existing := []domain.Schedule{schedule(1, 7, at(10, 0), 60, status)}
			assert.True(t, IsAvailable(existing, at(10, 15), 30, testBuffer))
		})
	}
}

func TestIsAvailable_UnknownStatusBlocks(t *testing.T) {
	for _, raw := range []string{"archived", "Rescheduled", ""} {
		t.Run(raw, func(t *testing.T) {
			status, known := domain.ParseScheduleStatus(raw)
			assert.False(t, known)

			existing := []domain.Schedule{schedule(1, 7, at(10, 0), 60, status)}
			assert.False(t, IsAvailable(existing, at(10, 15), 30, testBuffer))
			assert.Len(t, Conflicts(existing, at(10, 15), 30, testBuffer), 1)
		})
	}
}

func TestIsAvailable_BackendCasingStillBlocks(t *testing.T) {
	confirmed, _ := domain.ParseScheduleStatus("Confirmed")
	noShow, _ := domain.ParseScheduleStatus("NoShow")

	existing := []domain.Schedule{schedule(1, 7, at(10, 0), 60, confirmed)}
	assert.False(t, IsAvailable(existing, at(10, 15), 30, testBuffer))

	existing = []domain.Schedule{schedule(1, 7, at(10, 0), 60, noShow)}
	assert.True(t, IsAvailable(existing, at(10, 15), 30, testBuffer))
}

func TestIsAvailable_ZeroDurationIsInstant(t *testing.T) {
	existing := []domain.Schedule{schedule(1, 7, at(10, 0), 0, domain.StatusConfirmed)}

	// instant at 10:00 guards [10:00, 10:15)
	assert.False(t, IsAvailable(existing, at(10, 10), 0, testBuffer))
	assert.True(t, IsAvailable(existing, at(10, 15), 0, testBuffer))
	// negative durations behave like zero and do not panic
	assert.True(t, IsAvailable(existing, at(10, 15), -30, testBuffer))
}

func TestIsAvailable_Idempotent(t *testing.T) {
	existing := []domain.Schedule{schedule(1, 7, at(10, 0), 30, domain.StatusConfirmed)}

	first := IsAvailable(existing, at(10, 40), 30, testBuffer)
	second := IsAvailable(existing, at(10, 40), 30, testBuffer)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.StatusConfirmed, existing[0].Status)
}

func TestConflicts(t *testing.T) {
	existing := []domain.Schedule{
		schedule(1, 7, at(9, 0), 60, domain.StatusConfirmed),
		schedule(2, 7, at(9, 30), 60, domain.StatusCancelled),
		schedule(3, 7, at(10, 0), 30, domain.StatusPending),
		schedule(4, 7, at(13, 0), 30, domain.StatusPending),
	}

	got := Conflicts(existing, at(9, 45), 30, testBuffer)

	ids := make([]int64, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestRoleCompatible(t *testing.T) {
	assert.True(t, RoleCompatible(domain.RoleTrainer, domain.RoleTrainer))
	assert.False(t, RoleCompatible(domain.RoleTrainer, domain.RoleStaff))
	assert.True(t, RoleCompatible(domain.RoleStaff, domain.RoleTrainer))
	assert.True(t, RoleCompatible(domain.RoleStaff, domain.RoleStaff))
}

func TestAvailableTrainers(t *testing.T) {
	pool := []domain.Trainer{
		{ID: 1, Role: domain.RoleTrainer, Status: domain.TrainerActive},   // current trainer
		{ID: 2, Role: domain.RoleTrainer, Status: domain.TrainerActive},   // busy
		{ID: 3, Role: domain.RoleStaff, Status: domain.TrainerActive},     // staff
		{ID: 4, Role: domain.RoleTrainer, Status: domain.TrainerInactive}, // inactive
		{ID: 5, Role: domain.RoleTrainer, Status: domain.TrainerActive},   // free
		{ID: 6, Role: domain.RoleTrainer, Status: domain.TrainerActive},   // only cancelled
	}
	byTrainer := map[int64][]domain.Schedule{
		2: {schedule(10, 2, at(10, 0), 60, domain.StatusConfirmed)},
		6: {schedule(11, 6, at(10, 0), 60, domain.StatusCancelled)},
	}

	t.Run("trainer role booking", func(t *testing.T) {
		c := Candidate{TrainerID: 1, StartTime: at(10, 30), DurationMinutes: 30, RequiredRole: domain.RoleTrainer}

		got := AvailableTrainers(c, pool, byTrainer, testBuffer)

		assert.Equal(t, []int64{5, 6}, trainerIDs(got))
	})

	t.Run("staff role booking accepts both roles", func(t *testing.T) {
		c := Candidate{TrainerID: 1, StartTime: at(10, 30), DurationMinutes: 30, RequiredRole: domain.RoleStaff}

		got := AvailableTrainers(c, pool, byTrainer, testBuffer)

		assert.Equal(t, []int64{3, 5, 6}, trainerIDs(got))
	})

	t.Run("never suggests current trainer", func(t *testing.T) {
		c := Candidate{TrainerID: 5, StartTime: at(15, 0), DurationMinutes: 30, RequiredRole: domain.RoleStaff}

		got := AvailableTrainers(c, pool, byTrainer, testBuffer)

		assert.NotContains(t, trainerIDs(got), int64(5))
	})

	t.Run("inactive never appears even when free", func(t *testing.T) {
		c := Candidate{TrainerID: 1, StartTime: at(18, 0), DurationMinutes: 30, RequiredRole: domain.RoleTrainer}

		got := AvailableTrainers(c, pool, nil, testBuffer)

		assert.NotContains(t, trainerIDs(got), int64(4))
		assert.Equal(t, []int64{2, 5, 6}, trainerIDs(got))
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		c := Candidate{TrainerID: 1, StartTime: at(10, 30), DurationMinutes: 30, RequiredRole: domain.RoleTrainer}

		got := AvailableTrainers(c, nil, byTrainer, testBuffer)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestResolver_NegativeBuffer(t *testing.T) {
	r := NewResolver(-time.Minute)
	assert.Equal(t, time.Duration(0), r.Buffer())

	existing := []domain.Schedule{schedule(1, 7, at(10, 0), 30, domain.StatusConfirmed)}
	assert.True(t, r.IsAvailable(existing, at(10, 30), 30))
}

func trainerIDs(trainers []domain.Trainer) []int64 {
	ids := make([]int64, 0, len(trainers))
	for _, t := range trainers {
		ids = append(ids, t.ID)
	}
	return ids
}
