package get_available_trainers

import (
	"context"

	findTrainers "github.com/m04kA/SMC-GymScheduleService/internal/usecase/find_available_trainers"
)

type FindAvailableTrainersUseCase interface {
	Execute(ctx context.Context, req *findTrainers.Request) (*findTrainers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
