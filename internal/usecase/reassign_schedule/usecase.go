package reassign_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	gymClient "github.com/m04kA/SMC-GymScheduleService/internal/integrations/gymbackend"
)

// UseCase переназначение расписания другому тренеру
type UseCase struct {
	gymClient GymBackendClient
	fetcher   ScheduleFetcher
	resolver  Resolver
	repo      ReassignmentRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gymClient GymBackendClient,
	fetcher ScheduleFetcher,
	resolver Resolver,
	repo ReassignmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		gymClient: gymClient,
		fetcher:   fetcher,
		resolver:  resolver,
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет переназначение.
// Повторная проверка занятости и commit идут под advisory-блокировкой нового тренера
// в сериализуемой транзакции, поэтому два параллельных переназначения на одного
// тренера через этот сервис не могут оба пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReassignSchedule: actor=%d, schedule=%d, trainer=%d, request_id=%s",
		req.ActorID, req.ScheduleID, req.TrainerID, req.RequestID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReassignSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание
	schedule, err := uc.gymClient.GetSchedule(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, gymClient.ErrScheduleNotFound) {
			uc.logger.Warn("ReassignSchedule: schedule id=%d not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("ReassignSchedule: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if schedule.StartTime.IsZero() {
		uc.logger.Warn("ReassignSchedule: schedule id=%d has no start time", req.ScheduleID)
		return nil, ErrInvalidSchedule
	}
	// неизвестный статус блокирует тренера, но переносить такую запись нельзя
	if !schedule.Status.IsValid() || !schedule.IsLive() {
		uc.logger.Warn("ReassignSchedule: schedule id=%d has status=%s", req.ScheduleID, schedule.Status)
		return nil, ErrScheduleNotLive
	}
	if schedule.TrainerID == req.TrainerID {
		uc.logger.Warn("ReassignSchedule: trainer id=%d already assigned to schedule id=%d", req.TrainerID, req.ScheduleID)
		return nil, ErrSameTrainer
	}

	// 3. Проверяем нового тренера по пулу
	pool, err := uc.gymClient.GetTrainers(ctx)
	if err != nil {
		uc.logger.Error("ReassignSchedule: failed to get trainers: %v", err)
		return nil, fmt.Errorf("%w: failed to get trainers: %v", ErrInternal, err)
	}

	target, ok := domain.FindTrainer(pool, req.TrainerID)
	if !ok {
		uc.logger.Warn("ReassignSchedule: trainer id=%d not found", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	candidate := availability.CandidateFor(*schedule, domain.RequiredRoleFor(pool, schedule.TrainerID))
	if !availability.IsEligible(candidate, target) {
		uc.logger.Warn("ReassignSchedule: trainer id=%d (role=%s, status=%s) not eligible for %s schedule id=%d",
			target.ID, target.Role, target.Status, candidate.RequiredRole, schedule.ID)
		return nil, ErrTrainerNotEligible
	}

	var result *Response

	// 4. Проверка и commit в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем нового тренера до конца транзакции
		if err := uc.repo.LockTrainer(txCtx, target.ID); err != nil {
			uc.logger.Error("ReassignSchedule: failed to lock trainer id=%d: %v", target.ID, err)
			return fmt.Errorf("%w: failed to lock trainer: %v", ErrInternal, err)
		}

		// 4.2. Свежие расписания нового тренера, без fail-open
		schedules, err := uc.fetcher.FetchOne(txCtx, target.ID)
		if err != nil {
			uc.logger.Error("ReassignSchedule: failed to fetch schedules of trainer id=%d: %v", target.ID, err)
			return fmt.Errorf("%w: failed to fetch trainer schedules: %v", ErrInternal, err)
		}

		conflicts := uc.resolver.Conflicts(withoutSchedule(schedules, schedule.ID), schedule.StartTime, schedule.DurationMinutes)
		if len(conflicts) > 0 {
			uc.logger.Warn("ReassignSchedule: trainer id=%d busy, %d conflicting schedules (first id=%d)",
				target.ID, len(conflicts), conflicts[0].ID)
			return ErrTrainerNotAvailable
		}

		// 4.3. Журнал пишется до commit в backend: при ошибке backend запись откатится
		rec, err := uc.repo.Create(txCtx, &domain.Reassignment{
			ScheduleID:      schedule.ID,
			FromTrainerID:   schedule.TrainerID,
			ToTrainerID:     target.ID,
			ActorID:         req.ActorID,
			RequestID:       req.RequestID,
			StartTime:       schedule.StartTime,
			DurationMinutes: schedule.DurationMinutes,
		})
		if err != nil {
			uc.logger.Error("ReassignSchedule: failed to write journal: %v", err)
			return fmt.Errorf("%w: failed to write journal: %v", ErrInternal, err)
		}

		// 4.4. Commit в backend
		updated, err := uc.gymClient.ReassignSchedule(txCtx, schedule.ID, target.ID)
		if err != nil {
			switch {
			case errors.Is(err, gymClient.ErrConflict):
				uc.logger.Warn("ReassignSchedule: backend rejected schedule id=%d for trainer id=%d: %v",
					schedule.ID, target.ID, err)
				return ErrTrainerNotAvailable
			case errors.Is(err, gymClient.ErrScheduleNotFound):
				return ErrScheduleNotFound
			}
			uc.logger.Error("ReassignSchedule: failed to commit reassignment: %v", err)
			return fmt.Errorf("%w: failed to commit reassignment: %v", ErrInternal, err)
		}

		result = &Response{
			Schedule:       *updated,
			FromTrainerID:  schedule.TrainerID,
			ReassignmentID: rec.ID,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReassignSchedule: schedule id=%d moved from trainer id=%d to trainer id=%d (journal id=%d)",
		schedule.ID, result.FromTrainerID, target.ID, result.ReassignmentID)

	return result, nil
}

func validateRequest(req *Request) error {
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}
	return nil
}

func withoutSchedule(schedules []domain.Schedule, id int64) []domain.Schedule {
	result := make([]domain.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if s.ID != id {
			result = append(result, s)
		}
	}
	return result
}
