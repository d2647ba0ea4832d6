package reassign_schedule

import (
	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
	reassignSchedule "github.com/m04kA/SMC-GymScheduleService/internal/usecase/reassign_schedule"
)

// ReassignRequest HTTP request model
type ReassignRequest struct {
	TrainerID int64 `json:"trainerId"`
}

// ReassignResponse HTTP response model
type ReassignResponse struct {
	Schedule       models.ScheduleResponse `json:"schedule"`
	FromTrainerID  int64                   `json:"fromTrainerId"`
	ReassignmentID int64                   `json:"reassignmentId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReassignRequest) ToUseCaseRequest(scheduleID, actorID int64, requestID string) *reassignSchedule.Request {
	return &reassignSchedule.Request{
		ActorID:    actorID,
		RequestID:  requestID,
		ScheduleID: scheduleID,
		TrainerID:  r.TrainerID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reassignSchedule.Response) *ReassignResponse {
	return &ReassignResponse{
		Schedule:       models.FromDomainSchedule(resp.Schedule),
		FromTrainerID:  resp.FromTrainerID,
		ReassignmentID: resp.ReassignmentID,
	}
}
