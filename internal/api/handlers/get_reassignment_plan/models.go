package get_reassignment_plan

import (
	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
	planReassignment "github.com/m04kA/SMC-GymScheduleService/internal/usecase/plan_trainer_reassignment"
)

// SuggestionResponse свободные тренеры для одного расписания
type SuggestionResponse struct {
	Schedule models.ScheduleResponse  `json:"schedule"`
	Trainers []models.TrainerResponse `json:"trainers"`
}

// PlanResponse HTTP response model
type PlanResponse struct {
	TrainerID            int64                `json:"trainerId"`
	RequiredRole         string               `json:"requiredRole"`
	Suggestions          []SuggestionResponse `json:"suggestions"`
	UnverifiedTrainerIDs []int64              `json:"unverifiedTrainerIds,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *planReassignment.Response) *PlanResponse {
	out := &PlanResponse{
		TrainerID:            resp.TrainerID,
		RequiredRole:         string(resp.RequiredRole),
		Suggestions:          make([]SuggestionResponse, 0, len(resp.Suggestions)),
		UnverifiedTrainerIDs: resp.Unverified,
	}
	for _, s := range resp.Suggestions {
		out.Suggestions = append(out.Suggestions, SuggestionResponse{
			Schedule: models.FromDomainSchedule(s.Schedule),
			Trainers: models.FromDomainTrainerList(s.Trainers),
		})
	}
	return out
}
