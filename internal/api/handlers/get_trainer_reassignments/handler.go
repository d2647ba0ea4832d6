package get_trainer_reassignments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymScheduleService/internal/api/handlers"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
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

// Handle GET /api/v1/trainers/{trainerId}/reassignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем trainerId из URL
	vars := mux.Vars(r)
	trainerID, err := strconv.ParseInt(vars["trainerId"], 10, 64)
	if err != nil || trainerID <= 0 {
		h.logger.Warn("GET /trainers/{id}/reassignments - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	result, err := h.service.GetTrainerReassignments(r.Context(), trainerID)
	if err != nil {
		h.logger.Error("GET /trainers/{id}/reassignments - Failed to get journal: trainer_id=%d, error=%v",
			trainerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /trainers/{id}/reassignments - Journal retrieved: trainer_id=%d, count=%d",
		trainerID, len(result.Reassignments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
