package reassign_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// GymBackendClient интерфейс клиента gym backend
type GymBackendClient interface {
	GetSchedule(ctx context.Context, scheduleID int64) (*domain.Schedule, error)
	GetTrainers(ctx context.Context) ([]domain.Trainer, error)
	ReassignSchedule(ctx context.Context, scheduleID, trainerID int64) (*domain.Schedule, error)
}

// ScheduleFetcher загрузка расписаний одного тренера с таймаутом
type ScheduleFetcher interface {
	FetchOne(ctx context.Context, trainerID int64) ([]domain.Schedule, error)
}

// Resolver проверка занятости тренера
type Resolver interface {
	Conflicts(schedules []domain.Schedule, start time.Time, durationMinutes int) []domain.Schedule
}

// ReassignmentRepository журнал переназначений
type ReassignmentRepository interface {
	LockTrainer(ctx context.Context, trainerID int64) error
	Create(ctx context.Context, rec *domain.Reassignment) (*domain.Reassignment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
