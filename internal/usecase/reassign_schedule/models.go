package reassign_schedule

import "github.com/m04kA/SMC-GymScheduleService/internal/domain"

// Request модель запроса на переназначение расписания
type Request struct {
	ActorID    int64  // ID администратора
	RequestID  string // X-Request-ID, сохраняется в журнал
	ScheduleID int64
	TrainerID  int64 // новый тренер
}

// Response модель ответа
type Response struct {
	Schedule       domain.Schedule // расписание после переназначения
	FromTrainerID  int64
	ReassignmentID int64 // ID записи журнала
}
