package get_available_trainers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-GymScheduleService/internal/api/middleware"
	findTrainers "github.com/m04kA/SMC-GymScheduleService/internal/usecase/find_available_trainers"
)

const (
	msgInvalidScheduleID = "некорректный ID расписания"
	msgScheduleNotFound  = "расписание не найдено"
	msgInvalidSchedule   = "у расписания не указано время начала"
)

type Handler struct {
	useCase FindAvailableTrainersUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableTrainersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}/available-trainers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := strconv.ParseInt(mux.Vars(r)["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("GET /schedules/{id}/available-trainers - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &findTrainers.Request{
		UserID:     userID,
		ScheduleID: scheduleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, findTrainers.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id}/available-trainers - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, findTrainers.ErrInvalidSchedule):
			h.logger.Warn("GET /schedules/{id}/available-trainers - Schedule without start: schedule_id=%d", scheduleID)
			handlers.RespondUnprocessable(w, msgInvalidSchedule)

		case errors.Is(err, findTrainers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidScheduleID)

		default:
			h.logger.Error("GET /schedules/{id}/available-trainers - Failed: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id}/available-trainers - OK: schedule_id=%d, trainers=%d",
		scheduleID, len(result.Trainers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
