package plan_trainer_reassignment

import (
	"context"

	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	"github.com/m04kA/SMC-GymScheduleService/internal/service/fetcher"
)

// GymBackendClient интерфейс клиента gym backend
type GymBackendClient interface {
	GetTrainers(ctx context.Context) ([]domain.Trainer, error)
}

// ScheduleFetcher загрузка расписаний тренеров
type ScheduleFetcher interface {
	FetchOne(ctx context.Context, trainerID int64) ([]domain.Schedule, error)
	FetchByTrainers(ctx context.Context, trainerIDs []int64) (*fetcher.Result, error)
}

// Resolver подбор свободных тренеров
type Resolver interface {
	AvailableTrainers(c availability.Candidate, pool []domain.Trainer, byTrainer map[int64][]domain.Schedule) []domain.Trainer
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
