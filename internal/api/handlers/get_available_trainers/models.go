package get_available_trainers

import (
	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
	findTrainers "github.com/m04kA/SMC-GymScheduleService/internal/usecase/find_available_trainers"
)

// AvailableTrainersResponse HTTP response model
type AvailableTrainersResponse struct {
	Schedule     models.ScheduleResponse  `json:"schedule"`
	RequiredRole string                   `json:"requiredRole"`
	Trainers     []models.TrainerResponse `json:"trainers"`
	// Тренеры из списка, чьи расписания не удалось проверить (fail-open)
	UnverifiedTrainerIDs []int64 `json:"unverifiedTrainerIds,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findTrainers.Response) *AvailableTrainersResponse {
	return &AvailableTrainersResponse{
		Schedule:             models.FromDomainSchedule(resp.Schedule),
		RequiredRole:         string(resp.RequiredRole),
		Trainers:             models.FromDomainTrainerList(resp.Trainers),
		UnverifiedTrainerIDs: resp.Unverified,
	}
}
