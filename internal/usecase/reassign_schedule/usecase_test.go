package reassign_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymScheduleService/internal/availability"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	gymClient "github.com/m04kA/SMC-GymScheduleService/internal/integrations/gymbackend"
	"github.com/m04kA/SMC-GymScheduleService/pkg/logger"
)

type mockGym struct {
	mock.Mock
}

func (m *mockGym) GetSchedule(ctx context.Context, scheduleID int64) (*domain.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	s, _ := args.Get(0).(*domain.Schedule)
	return s, args.Error(1)
}

func (m *mockGym) GetTrainers(ctx context.Context) ([]domain.Trainer, error) {
	args := m.Called(ctx)
	t, _ := args.Get(0).([]domain.Trainer)
	return t, args.Error(1)
}

func (m *mockGym) ReassignSchedule(ctx context.Context, scheduleID, trainerID int64) (*domain.Schedule, error) {
	args := m.Called(ctx, scheduleID, trainerID)
	s, _ := args.Get(0).(*domain.Schedule)
	return s, args.Error(1)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchOne(ctx context.Context, trainerID int64) ([]domain.Schedule, error) {
	args := m.Called(ctx, trainerID)
	s, _ := args.Get(0).([]domain.Schedule)
	return s, args.Error(1)
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) LockTrainer(ctx context.Context, trainerID int64) error {
	return m.Called(ctx, trainerID).Error(0)
}

func (m *mockRepo) Create(ctx context.Context, rec *domain.Reassignment) (*domain.Reassignment, error) {
	args := m.Called(ctx, rec)
	r, _ := args.Get(0).(*domain.Reassignment)
	return r, args.Error(1)
}

// fakeTx выполняет fn без БД и запоминает результат
type fakeTx struct {
	calls int
	err   error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	f.err = fn(ctx)
	return f.err
}

var (
	start = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	pool = []domain.Trainer{
		{ID: 1, Role: domain.RoleTrainer, Status: domain.TrainerActive},
		{ID: 2, Role: domain.RoleTrainer, Status: domain.TrainerActive},
		{ID: 3, Role: domain.RoleStaff, Status: domain.TrainerActive},
		{ID: 4, Role: domain.RoleTrainer, Status: domain.TrainerInactive},
	}
)

func liveSchedule() *domain.Schedule {
	return &domain.Schedule{ID: 10, TrainerID: 1, StartTime: start, DurationMinutes: 60, Status: domain.StatusConfirmed}
}

type deps struct {
	gym     *mockGym
	fetcher *mockFetcher
	repo    *mockRepo
	tx      *fakeTx
}

func newUseCase() (*UseCase, deps) {
	d := deps{gym: &mockGym{}, fetcher: &mockFetcher{}, repo: &mockRepo{}, tx: &fakeTx{}}
	uc := NewUseCase(d.gym, d.fetcher, availability.NewResolver(domain.DefaultBufferMinutes*time.Minute), d.repo, d.tx, logger.NewNop())
	return uc, d
}

func TestExecute_Success(t *testing.T) {
	uc, d := newUseCase()

	d.gym.On("GetSchedule", mock.Anything, int64(10)).Return(liveSchedule(), nil)
	d.gym.On("GetTrainers", mock.Anything).Return(pool, nil)
	d.repo.On("LockTrainer", mock.Anything, int64(2)).Return(nil)
	// ends 08:45 + 15 min buffer = 09:00, does not reach 10:00
	d.fetcher.On("FetchOne", mock.Anything, int64(2)).Return([]domain.Schedule{
		{ID: 30, TrainerID: 2, StartTime: start.Add(-2 * time.Hour), DurationMinutes: 45, Status: domain.StatusConfirmed},
	}, nil)
	d.repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reassignment) bool {
		return r.ScheduleID == 10 && r.FromTrainerID == 1 && r.ToTrainerID == 2 &&
			r.ActorID == 7 && r.RequestID == "req-1" && r.StartTime.Equal(start) && r.DurationMinutes == 60
	})).Return(&domain.Reassignment{ID: 55}, nil)

	updated := liveSchedule()
	updated.TrainerID = 2
	d.gym.On("ReassignSchedule", mock.Anything, int64(10), int64(2)).Return(updated, nil)

	resp, err := uc.Execute(context.Background(), &Request{ActorID: 7, RequestID: "req-1", ScheduleID: 10, TrainerID: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Schedule.TrainerID)
	assert.Equal(t, int64(1), resp.FromTrainerID)
	assert.Equal(t, int64(55), resp.ReassignmentID)
	assert.Equal(t, 1, d.tx.calls)

	d.gym.AssertExpectations(t)
	d.repo.AssertExpectations(t)
	d.fetcher.AssertExpectations(t)
}

func TestExecute_TrainerBusyWithinBuffer(t *testing.T) {
	uc, d := newUseCase()

	d.gym.On("GetSchedule", mock.Anything, int64(10)).Return(liveSchedule(), nil)
	d.gym.On("GetTrainers", mock.Anything).Return(pool, nil)
	d.repo.On("LockTrainer", mock.Anything, int64(2)).Return(nil)
	// ends 09:50, guarded until 10:05
	d.fetcher.On("FetchOne", mock.Anything, int64(2)).Return([]domain.Schedule{
		{ID: 31, TrainerID: 2, StartTime: start.Add(-time.Hour), DurationMinutes: 50, Status: domain.StatusPending},
	}, nil)

	_, err := uc.Execute(context.Background(), &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2})
	assert.ErrorIs(t, err, ErrTrainerNotAvailable)

	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	d.gym.AssertNotCalled(t, "ReassignSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_UnknownStatusOccupiesTrainer(t *testing.T) {
	uc, d := newUseCase()

	d.gym.On("GetSchedule", mock.Anything, int64(10)).Return(liveSchedule(), nil)
	d.gym.On("GetTrainers", mock.Anything).Return(pool, nil)
	d.repo.On("LockTrainer", mock.Anything, int64(2)).Return(nil)
	d.fetcher.On("FetchOne", mock.Anything, int64(2)).Return([]domain.Schedule{
		{ID: 32, TrainerID: 2, StartTime: start.Add(15 * time.Minute), DurationMinutes: 30, Status: "archived"},
	}, nil)

	_, err := uc.Execute(context.Background(), &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2})
	assert.ErrorIs(t, err, ErrTrainerNotAvailable)

	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	d.gym.AssertNotCalled(t, "ReassignSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_StrictFetchFailure(t *testing.T) {
	uc, d := newUseCase()

	d.gym.On("GetSchedule", mock.Anything, int64(10)).Return(liveSchedule(), nil)
	d.gym.On("GetTrainers", mock.Anything).Return(pool, nil)
	d.repo.On("LockTrainer", mock.Anything, int64(2)).Return(nil)
	d.fetcher.On("FetchOne", mock.Anything, int64(2)).Return(nil, errors.New("timeout"))

	_, err := uc.Execute(context.Background(), &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2})
	assert.ErrorIs(t, err, ErrInternal)

	d.gym.AssertNotCalled(t, "ReassignSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_BackendConflict(t *testing.T) {
	uc, d := newUseCase()

	d.gym.On("GetSchedule", mock.Anything, int64(10)).Return(liveSchedule(), nil)
	d.gym.On("GetTrainers", mock.Anything).Return(pool, nil)
	d.repo.On("LockTrainer", mock.Anything, int64(2)).Return(nil)
	d.fetcher.On("FetchOne", mock.Anything, int64(2)).Return([]domain.Schedule{}, nil)
	d.repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Reassignment{ID: 1}, nil)
	d.gym.On("ReassignSchedule", mock.Anything, int64(10), int64(2)).
		Return(nil, errors.Join(gymClient.ErrConflict, errors.New("overlap")))

	_, err := uc.Execute(context.Background(), &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2})
	assert.ErrorIs(t, err, ErrTrainerNotAvailable)
	assert.ErrorIs(t, d.tx.err, ErrTrainerNotAvailable)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		schedule *domain.Schedule
		getErr   error
		wantErr  error
	}{
		{
			name:    "invalid schedule id",
			req:     &Request{ActorID: 7, ScheduleID: 0, TrainerID: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing actor",
			req:     &Request{ScheduleID: 10, TrainerID: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "schedule not found",
			req:     &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2},
			getErr:  gymClient.ErrScheduleNotFound,
			wantErr: ErrScheduleNotFound,
		},
		{
			name:     "cancelled schedule",
			req:      &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2},
			schedule: &domain.Schedule{ID: 10, TrainerID: 1, StartTime: start, Status: domain.StatusCancelled},
			wantErr:  ErrScheduleNotLive,
		},
		{
			name:     "unknown status",
			req:      &Request{ActorID: 7, ScheduleID: 10, TrainerID: 2},
			schedule: &domain.Schedule{ID: 10, TrainerID: 1, StartTime: start, DurationMinutes: 60, Status: "archived"},
			wantErr:  ErrScheduleNotLive,
		},
		{
			name:     "same trainer",
			req:      &Request{ActorID: 7, ScheduleID: 10, TrainerID: 1},
			schedule: liveSchedule(),
			wantErr:  ErrSameTrainer,
		},
		{
			name:     "unknown trainer",
			req:      &Request{ActorID: 7, ScheduleID: 10, TrainerID: 99},
			schedule: liveSchedule(),
			wantErr:  ErrTrainerNotFound,
		},
		{
			name:     "inactive trainer",
			req:      &Request{ActorID: 7, ScheduleID: 10, TrainerID: 4},
			schedule: liveSchedule(),
			wantErr:  ErrTrainerNotEligible,
		},
		{
			name:     "staff for trainer session",
			req:      &Request{ActorID: 7, ScheduleID: 10, TrainerID: 3},
			schedule: liveSchedule(),
			wantErr:  ErrTrainerNotEligible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, d := newUseCase()
			if tt.schedule != nil || tt.getErr != nil {
				d.gym.On("GetSchedule", mock.Anything, tt.req.ScheduleID).Return(tt.schedule, tt.getErr)
			}
			d.gym.On("GetTrainers", mock.Anything).Return(pool, nil).Maybe()

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, d.tx.calls)
		})
	}
}
