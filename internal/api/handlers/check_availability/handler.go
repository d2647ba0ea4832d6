package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules"
	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, startTime ожидается в RFC 3339"
	msgInvalidInput       = "требуются trainerId и startTime"
	msgBackendUnavailable = "расписания тренера недоступны, повторите позже"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedules.ErrTrainerUnavailable):
			h.logger.Warn("POST /availability/check - Backend unavailable: trainer_id=%d", req.TrainerID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBackendUnavailable)

		default:
			h.logger.Error("POST /availability/check - Failed: trainer_id=%d, error=%v", req.TrainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
