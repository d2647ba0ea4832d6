package get_reassignment_history

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymScheduleService/internal/api/handlers"
)

const (
	msgInvalidScheduleID = "некорректный ID расписания"
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

// Handle GET /api/v1/schedules/{scheduleId}/reassignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем scheduleId из URL
	vars := mux.Vars(r)
	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("GET /schedules/{id}/reassignments - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	result, err := h.service.GetReassignmentHistory(r.Context(), scheduleID)
	if err != nil {
		h.logger.Error("GET /schedules/{id}/reassignments - Failed to get journal: schedule_id=%d, error=%v",
			scheduleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/{id}/reassignments - Journal retrieved: schedule_id=%d, count=%d",
		scheduleID, len(result.Reassignments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
