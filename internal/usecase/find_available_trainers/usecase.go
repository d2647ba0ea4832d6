package find_available_trainers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	gymClient "github.com/m04kA/SMC-GymScheduleService/internal/integrations/gymbackend"
)

// UseCase подбор свободных тренеров для одного расписания
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

// Execute выполняет use case подбора свободных тренеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableTrainers: user=%d, schedule=%d", req.UserID, req.ScheduleID)

	// 1. Валидация входных данных
	if req.ScheduleID <= 0 {
		return nil, fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}

	// 2. Получаем расписание
	schedule, err := uc.gymClient.GetSchedule(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, gymClient.ErrScheduleNotFound) {
			uc.logger.Warn("FindAvailableTrainers: schedule id=%d not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("FindAvailableTrainers: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if schedule.StartTime.IsZero() {
		uc.logger.Warn("FindAvailableTrainers: schedule id=%d has no start time", req.ScheduleID)
		return nil, ErrInvalidSchedule
	}

	// 3. Получаем пул тренеров
	pool, err := uc.gymClient.GetTrainers(ctx)
	if err != nil {
		uc.logger.Error("FindAvailableTrainers: failed to get trainers: %v", err)
		return nil, fmt.Errorf("%w: failed to get trainers: %v", ErrInternal, err)
	}

	role := domain.RequiredRoleFor(pool, schedule.TrainerID)
	candidate := availability.CandidateFor(*schedule, role)

	// 4. Загружаем расписания только тех, кто проходит остальные фильтры
	ids := eligibleIDs(candidate, pool)
	fetched, err := uc.fetcher.FetchByTrainers(ctx, ids)
	if err != nil {
		uc.logger.Error("FindAvailableTrainers: failed to fetch schedules for %d trainers: %v", len(ids), err)
		return nil, fmt.Errorf("%w: failed to fetch schedules: %v", ErrInternal, err)
	}

	// 5. Вычисляем свободных тренеров
	trainers := uc.resolver.AvailableTrainers(candidate, fetched.FilterPool(pool), fetched.ByTrainer)

	uc.logger.Info("FindAvailableTrainers: schedule=%d, role=%s, candidates=%d, available=%d, failed_fetches=%d",
		req.ScheduleID, role, len(ids), len(trainers), len(fetched.Failed))

	return &Response{
		Schedule:     *schedule,
		RequiredRole: role,
		Trainers:     trainers,
		Unverified:   unverified(trainers, fetched.Failed),
	}, nil
}

func eligibleIDs(c availability.Candidate, pool []domain.Trainer) []int64 {
	ids := make([]int64, 0, len(pool))
	for _, t := range pool {
		if availability.IsEligible(c, t) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// unverified тренеры из результата, чьи расписания не загрузились
func unverified(trainers []domain.Trainer, failed []int64) []int64 {
	if len(failed) == 0 {
		return nil
	}
	failedSet := make(map[int64]struct{}, len(failed))
	for _, id := range failed {
		failedSet[id] = struct{}{}
	}

	var result []int64
	for _, t := range trainers {
		if _, ok := failedSet[t.ID]; ok {
			result = append(result, t.ID)
		}
	}
	return result
}
