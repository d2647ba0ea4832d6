package reassign_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-GymScheduleService/internal/api/middleware"
	reassignSchedule "github.com/m04kA/SMC-GymScheduleService/internal/usecase/reassign_schedule"
)

const (
	msgInvalidScheduleID   = "некорректный ID расписания"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные данные запроса"
	msgScheduleNotFound    = "расписание не найдено"
	msgInvalidSchedule     = "у расписания не указано время начала"
	msgScheduleNotLive     = "расписание завершено или отменено"
	msgSameTrainer         = "тренер уже назначен на это расписание"
	msgTrainerNotFound     = "тренер не найден"
	msgTrainerNotEligible  = "тренер неактивен или не подходит по роли"
	msgTrainerNotAvailable = "тренер занят в это время"
)

type Handler struct {
	useCase ReassignScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ReassignScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/{scheduleId}/reassign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := strconv.ParseInt(mux.Vars(r)["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("POST /schedules/{id}/reassign - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedules/{id}/reassign - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ReassignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/{id}/reassign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(scheduleID, userID, requestID))
	if err != nil {
		switch {
		case errors.Is(err, reassignSchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reassignSchedule.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/reassign - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, reassignSchedule.ErrTrainerNotFound):
			h.logger.Warn("POST /schedules/{id}/reassign - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, reassignSchedule.ErrTrainerNotAvailable):
			h.logger.Warn("POST /schedules/{id}/reassign - Trainer busy: schedule_id=%d, trainer_id=%d", scheduleID, req.TrainerID)
			handlers.RespondConflict(w, msgTrainerNotAvailable)

		case errors.Is(err, reassignSchedule.ErrSameTrainer):
			handlers.RespondConflict(w, msgSameTrainer)

		case errors.Is(err, reassignSchedule.ErrTrainerNotEligible):
			handlers.RespondUnprocessable(w, msgTrainerNotEligible)

		case errors.Is(err, reassignSchedule.ErrScheduleNotLive):
			handlers.RespondUnprocessable(w, msgScheduleNotLive)

		case errors.Is(err, reassignSchedule.ErrInvalidSchedule):
			handlers.RespondUnprocessable(w, msgInvalidSchedule)

		default:
			h.logger.Error("POST /schedules/{id}/reassign - Failed: schedule_id=%d, trainer_id=%d, request_id=%s, error=%v",
				scheduleID, req.TrainerID, requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/reassign - Reassigned: schedule_id=%d, from=%d, to=%d, actor=%d",
		scheduleID, result.FromTrainerID, req.TrainerID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
