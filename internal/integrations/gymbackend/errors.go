package gymbackend

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("gymbackend client: schedule not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("gymbackend client: trainer not found")

	// ErrConflict возвращается, когда backend отклонил переназначение из-за конфликта
	ErrConflict = errors.New("gymbackend client: conflict")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("gymbackend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("gymbackend client: invalid response")
)
