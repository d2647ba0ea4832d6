package get_reassignment_plan

import (
	"context"

	planReassignment "github.com/m04kA/SMC-GymScheduleService/internal/usecase/plan_trainer_reassignment"
)

type PlanReassignmentUseCase interface {
	Execute(ctx context.Context, req *planReassignment.Request) (*planReassignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
