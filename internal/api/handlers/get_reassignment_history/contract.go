package get_reassignment_history

import (
	"context"

	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetReassignmentHistory(ctx context.Context, scheduleID int64) (*models.ReassignmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
