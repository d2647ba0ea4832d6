package find_available_trainers

import "github.com/m04kA/SMC-GymScheduleService/internal/domain"

// Request модель запроса свободных тренеров для расписания
type Request struct {
	UserID     int64 // ID администратора (для логирования)
	ScheduleID int64 // ID расписания, которому нужен тренер
}

// Response модель ответа
type Response struct {
	Schedule     domain.Schedule
	RequiredRole domain.TrainerRole
	Trainers     []domain.Trainer // свободные тренеры в порядке пула
	// Unverified тренеры из Trainers, чьи расписания не загрузились (fail-open)
	Unverified []int64
}
