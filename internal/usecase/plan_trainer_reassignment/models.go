package plan_trainer_reassignment

import "github.com/m04kA/SMC-GymScheduleService/internal/domain"

// Request модель запроса
type Request struct {
	UserID    int64
	TrainerID int64 // тренер, чьи расписания нужно раздать
}

// Suggestion свободные тренеры для одного расписания
type Suggestion struct {
	Schedule domain.Schedule
	Trainers []domain.Trainer
}

// Response модель ответа
type Response struct {
	TrainerID    int64
	RequiredRole domain.TrainerRole
	Suggestions  []Suggestion // по возрастанию StartTime
	Unverified   []int64      // тренеры, чьи расписания не загрузились
}
