package find_available_trainers

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("find_available_trainers: schedule not found")

	// ErrInvalidSchedule возвращается, когда у расписания нет времени начала
	ErrInvalidSchedule = errors.New("find_available_trainers: schedule has no start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_available_trainers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_available_trainers: internal error")
)
