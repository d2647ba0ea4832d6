package schedules

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedules: invalid input data")

	// ErrTrainerUnavailable возвращается, когда расписания тренера не удалось загрузить
	ErrTrainerUnavailable = errors.New("schedules: trainer schedules unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules: internal error")
)
