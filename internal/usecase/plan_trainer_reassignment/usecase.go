package plan_trainer_reassignment

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// UseCase план раздачи всех активных расписаний тренера другим тренерам.
// Ничего не переназначает, только предлагает.
type UseCase struct {
	gymClient GymBackendClient
	fetcher   ScheduleFetcher
	resolver  Resolver
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gymClient GymBackendClient,
	fetcher ScheduleFetcher,
	resolver Resolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		gymClient: gymClient,
		fetcher:   fetcher,
		resolver:  resolver,
		logger:    logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PlanTrainerReassignment: user=%d, trainer=%d", req.UserID, req.TrainerID)

	// 1. Валидация входных данных
	if req.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	// 2. Пул тренеров
	pool, err := uc.gymClient.GetTrainers(ctx)
	if err != nil {
		uc.logger.Error("PlanTrainerReassignment: failed to get trainers: %v", err)
		return nil, fmt.Errorf("%w: failed to get trainers: %v", ErrInternal, err)
	}

	if _, ok := domain.FindTrainer(pool, req.TrainerID); !ok {
		uc.logger.Warn("PlanTrainerReassignment: trainer id=%d not found", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	// 3. Активные расписания тренера
	own, err := uc.fetcher.FetchOne(ctx, req.TrainerID)
	if err != nil {
		uc.logger.Error("PlanTrainerReassignment: failed to fetch schedules of trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to fetch trainer schedules: %v", ErrInternal, err)
	}

	live := make([]domain.Schedule, 0, len(own))
	for _, s := range own {
		if s.Status.IsValid() && s.IsLive() && !s.StartTime.IsZero() {
			live = append(live, s)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].StartTime.Before(live[j].StartTime)
	})

	role := domain.RequiredRoleFor(pool, req.TrainerID)
	resp := &Response{
		TrainerID:    req.TrainerID,
		RequiredRole: role,
		Suggestions:  make([]Suggestion, 0, len(live)),
	}
	if len(live) == 0 {
		uc.logger.Info("PlanTrainerReassignment: trainer id=%d has no live schedules", req.TrainerID)
		return resp, nil
	}

	// 4. Расписания кандидатов загружаются один раз на весь план.
	// Роль и исключаемый тренер одинаковы для всех расписаний, поэтому
	// набор кандидатов тоже общий.
	eligibility := availability.Candidate{TrainerID: req.TrainerID, RequiredRole: role}
	ids := make([]int64, 0, len(pool))
	for _, t := range pool {
		if availability.IsEligible(eligibility, t) {
			ids = append(ids, t.ID)
		}
	}

	fetched, err := uc.fetcher.FetchByTrainers(ctx, ids)
	if err != nil {
		uc.logger.Error("PlanTrainerReassignment: failed to fetch schedules for %d trainers: %v", len(ids), err)
		return nil, fmt.Errorf("%w: failed to fetch schedules: %v", ErrInternal, err)
	}
	candidates := fetched.FilterPool(pool)

	// 5. Свободные тренеры для каждого расписания
	for _, s := range live {
		trainers := uc.resolver.AvailableTrainers(availability.CandidateFor(s, role), candidates, fetched.ByTrainer)
		resp.Suggestions = append(resp.Suggestions, Suggestion{Schedule: s, Trainers: trainers})
	}
	resp.Unverified = unverified(candidates, fetched.Failed)

	uc.logger.Info("PlanTrainerReassignment: trainer id=%d, schedules=%d, candidates=%d, failed_fetches=%d",
		req.TrainerID, len(live), len(ids), len(fetched.Failed))

	return resp, nil
}

// unverified тренеры, оставшиеся в кандидатах без загруженных расписаний (fail-open)
func unverified(candidates []domain.Trainer, failed []int64) []int64 {
	var result []int64
	for _, id := range failed {
		if _, ok := domain.FindTrainer(candidates, id); ok {
			result = append(result, id)
		}
	}
	return result
}
