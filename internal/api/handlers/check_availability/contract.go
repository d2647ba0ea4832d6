package check_availability

import (
	"context"

	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
)

type ScheduleService interface {
	CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
