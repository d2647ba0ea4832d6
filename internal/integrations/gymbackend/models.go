package gymbackend

import (
	"time"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// Schedule модель расписания из gym backend
type Schedule struct {
	ID              int64     `json:"id"`
	TrainerID       int64     `json:"trainerId"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
}

// ToDomain конвертирует в доменную модель.
// Статус нормализуется; неизвестный статус сохраняется как есть и блокирует время тренера.
func (s *Schedule) ToDomain() domain.Schedule {
	status, _ := domain.ParseScheduleStatus(s.Status)
	return domain.Schedule{
		ID:              s.ID,
		TrainerID:       s.TrainerID,
		StartTime:       s.StartTime,
		DurationMinutes: s.DurationMinutes,
		Status:          status,
		Notes:           s.Notes,
	}
}

// Trainer модель сотрудника из gym backend
type Trainer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (t *Trainer) ToDomain() domain.Trainer {
	return domain.Trainer{
		ID:     t.ID,
		Name:   t.Name,
		Role:   domain.ParseTrainerRole(t.Role),
		Status: domain.ParseTrainerStatus(t.Status),
	}
}

// ReassignRequest тело запроса на смену тренера
type ReassignRequest struct {
	TrainerID int64 `json:"trainerId"`
}

// ErrorResponse модель ошибки от gym backend
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
