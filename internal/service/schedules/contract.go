package schedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// ReassignmentRepository интерфейс журнала переназначений
type ReassignmentRepository interface {
	GetByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.Reassignment, error)
	GetByTrainerID(ctx context.Context, trainerID int64) ([]*domain.Reassignment, error)
}

// ScheduleFetcher загрузка расписаний одного тренера
type ScheduleFetcher interface {
	FetchOne(ctx context.Context, trainerID int64) ([]domain.Schedule, error)
}

// Resolver поиск конфликтующих расписаний
type Resolver interface {
	Conflicts(schedules []domain.Schedule, start time.Time, durationMinutes int) []domain.Schedule
}

// MetricsObserver метрики решений о доступности
type MetricsObserver interface {
	ObserveAvailability(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
