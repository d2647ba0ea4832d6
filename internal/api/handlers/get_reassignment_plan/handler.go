package get_reassignment_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GymScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-GymScheduleService/internal/api/middleware"
	planReassignment "github.com/m04kA/SMC-GymScheduleService/internal/usecase/plan_trainer_reassignment"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgTrainerNotFound  = "тренер не найден"
)

type Handler struct {
	useCase PlanReassignmentUseCase
	logger  Logger
}

func NewHandler(useCase PlanReassignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/reassignment-plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.ParseInt(mux.Vars(r)["trainerId"], 10, 64)
	if err != nil || trainerID <= 0 {
		h.logger.Warn("GET /trainers/{id}/reassignment-plan - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &planReassignment.Request{UserID: userID, TrainerID: trainerID})
	if err != nil {
		switch {
		case errors.Is(err, planReassignment.ErrTrainerNotFound):
			h.logger.Warn("GET /trainers/{id}/reassignment-plan - Trainer not found: trainer_id=%d", trainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, planReassignment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTrainerID)

		default:
			h.logger.Error("GET /trainers/{id}/reassignment-plan - Failed: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/reassignment-plan - OK: trainer_id=%d, schedules=%d",
		trainerID, len(result.Suggestions))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
