package find_available_trainers

import (
	"context"

	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	"github.com/m04kA/SMC-GymScheduleService/internal/service/fetcher"
)

// GymBackendClient интерфейс клиента gym backend
type GymBackendClient interface {
	GetSchedule(ctx context.Context, scheduleID int64) (*domain.Schedule, error)
	GetTrainers(ctx context.Context) ([]domain.Trainer, error)
}

// ScheduleFetcher параллельная загрузка расписаний кандидатов
type ScheduleFetcher interface {
	FetchByTrainers(ctx context.Context, trainerIDs []int64) (*fetcher.Result, error)
}

// Resolver вычисление свободных тренеров
type Resolver interface {
	AvailableTrainers(c availability.Candidate, pool []domain.Trainer, byTrainer map[int64][]domain.Schedule) []domain.Trainer
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
