package reassign_schedule

import (
	"context"

	reassignSchedule "github.com/m04kA/SMC-GymScheduleService/internal/usecase/reassign_schedule"
)

type ReassignScheduleUseCase interface {
	Execute(ctx context.Context, req *reassignSchedule.Request) (*reassignSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
