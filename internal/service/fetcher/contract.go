package fetcher

import (
	"context"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// ScheduleSource источник расписаний тренеров (gym backend)
type ScheduleSource interface {
	GetSchedulesByTrainer(ctx context.Context, trainerID int64) ([]domain.Schedule, error)
}

// MetricsObserver счетчик результатов запросов
type MetricsObserver interface {
	ObserveFetch(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
