package schedules

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GymScheduleService/internal/service/schedules/models"
)

// Service сервис для чтения расписаний и журнала переназначений
type Service struct {
	repo     ReassignmentRepository
	fetcher  ScheduleFetcher
	resolver Resolver
	metrics  MetricsObserver
	logger   Logger
}

// NewService создает новый экземпляр сервиса. metrics может быть nil.
func NewService(
	repo ReassignmentRepository,
	fetcher ScheduleFetcher,
	resolver Resolver,
	metrics MetricsObserver,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		fetcher:  fetcher,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

// CheckAvailability проверяет, свободен ли тренер в указанное время.
// Загрузка строгая: при ошибке backend ответ "свободен" не выдается.
func (s *Service) CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) (*models.AvailabilityResponse, error) {
	if req.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerId must be positive", ErrInvalidInput)
	}
	if req.StartTime == nil || req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	s.logger.Info("CheckAvailability: trainer=%d, start=%s, duration=%d",
		req.TrainerID, req.StartTime.Format("2006-01-02T15:04Z07:00"), req.DurationMinutes)

	schedules, err := s.fetcher.FetchOne(ctx, req.TrainerID)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to fetch schedules of trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: %v", ErrTrainerUnavailable, err)
	}

	conflicts := s.resolver.Conflicts(schedules, *req.StartTime, req.DurationMinutes)
	available := len(conflicts) == 0
	if s.metrics != nil {
		s.metrics.ObserveAvailability(available)
	}

	s.logger.Info("CheckAvailability: trainer=%d available=%t, conflicts=%d", req.TrainerID, available, len(conflicts))

	return &models.AvailabilityResponse{
		TrainerID: req.TrainerID,
		Available: available,
		Conflicts: models.FromDomainScheduleList(conflicts),
	}, nil
}

// GetReassignmentHistory получает журнал переназначений расписания, новые первыми
func (s *Service) GetReassignmentHistory(ctx context.Context, scheduleID int64) (*models.ReassignmentListResponse, error) {
	s.logger.Info("GetReassignmentHistory: fetching journal for schedule=%d", scheduleID)

	if scheduleID <= 0 {
		return nil, fmt.Errorf("%w: scheduleId must be positive", ErrInvalidInput)
	}

	list, err := s.repo.GetByScheduleID(ctx, scheduleID)
	if err != nil {
		s.logger.Error("GetReassignmentHistory: repository error for schedule=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: GetReassignmentHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetReassignmentHistory: fetched %d records for schedule=%d", len(list), scheduleID)
	return models.FromDomainReassignmentList(list), nil
}

// GetTrainerReassignments получает записи, где тренер был исходным или новым
func (s *Service) GetTrainerReassignments(ctx context.Context, trainerID int64) (*models.ReassignmentListResponse, error) {
	s.logger.Info("GetTrainerReassignments: fetching journal for trainer=%d", trainerID)

	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerId must be positive", ErrInvalidInput)
	}

	list, err := s.repo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		s.logger.Error("GetTrainerReassignments: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: GetTrainerReassignments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTrainerReassignments: fetched %d records for trainer=%d", len(list), trainerID)
	return models.FromDomainReassignmentList(list), nil
}
