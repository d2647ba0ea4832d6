package reassign_schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("reassign_schedule: schedule not found")

	// ErrInvalidSchedule возвращается, когда у расписания нет времени начала
	ErrInvalidSchedule = errors.New("reassign_schedule: schedule has no start time")

	// ErrScheduleNotLive возвращается, когда расписание завершено, отменено или no-show
	ErrScheduleNotLive = errors.New("reassign_schedule: schedule is not pending or confirmed")

	// ErrSameTrainer возвращается, когда новый тренер совпадает с текущим
	ErrSameTrainer = errors.New("reassign_schedule: trainer is already assigned")

	// ErrTrainerNotFound возвращается, когда тренера нет в пуле
	ErrTrainerNotFound = errors.New("reassign_schedule: trainer not found")

	// ErrTrainerNotEligible возвращается, когда тренер неактивен или не подходит по роли
	ErrTrainerNotEligible = errors.New("reassign_schedule: trainer is not eligible")

	// ErrTrainerNotAvailable возвращается, когда тренер занят в это время
	ErrTrainerNotAvailable = errors.New("reassign_schedule: trainer is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reassign_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reassign_schedule: internal error")
)
