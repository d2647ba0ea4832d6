package plan_trainer_reassignment

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренера нет в пуле
	ErrTrainerNotFound = errors.New("plan_trainer_reassignment: trainer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("plan_trainer_reassignment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("plan_trainer_reassignment: internal error")
)
