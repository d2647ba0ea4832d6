package fetcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymScheduleService/internal/config"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	"github.com/m04kA/SMC-GymScheduleService/pkg/logger"
	"github.com/m04kA/SMC-GymScheduleService/pkg/metrics"
)

type fakeSource struct {
	schedules map[int64][]domain.Schedule
	errs      map[int64]error
	hang      map[int64]bool
	delay     time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (s *fakeSource) GetSchedulesByTrainer(ctx context.Context, trainerID int64) ([]domain.Schedule, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		cur := s.maxInFlight.Load()
		if n <= cur || s.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	if s.hang[trainerID] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if err := s.errs[trainerID]; err != nil {
		return nil, err
	}
	return s.schedules[trainerID], nil
}

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *countingMetrics) ObserveFetch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[outcome]++
}

func busy(trainerID int64) []domain.Schedule {
	return []domain.Schedule{{
		ID:              trainerID * 100,
		TrainerID:       trainerID,
		StartTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}
}

func TestFetchByTrainers_FailOpen(t *testing.T) {
	src := &fakeSource{
		schedules: map[int64][]domain.Schedule{1: busy(1), 3: busy(3)},
		errs:      map[int64]error{2: errors.New("502 bad gateway")},
	}
	m := &countingMetrics{}
	f := NewFetcher(src, Options{Timeout: time.Second, MaxConcurrency: 4, FailPolicy: config.FailOpen}, m, logger.NewNop())

	res, err := f.FetchByTrainers(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, res.Failed)
	assert.Len(t, res.ByTrainer[1], 1)
	assert.Len(t, res.ByTrainer[3], 1)
	require.Contains(t, res.ByTrainer, int64(2))
	assert.Empty(t, res.ByTrainer[2])

	pool := []domain.Trainer{{ID: 1}, {ID: 2}, {ID: 3}}
	assert.Equal(t, pool, res.FilterPool(pool))

	assert.Equal(t, 2, m.outcomes[metrics.OutcomeSuccess])
	assert.Equal(t, 1, m.outcomes[metrics.OutcomeError])
}

func TestFetchByTrainers_FailClosed(t *testing.T) {
	src := &fakeSource{
		schedules: map[int64][]domain.Schedule{1: busy(1)},
		errs:      map[int64]error{2: errors.New("connection reset")},
	}
	f := NewFetcher(src, Options{Timeout: time.Second, MaxConcurrency: 4, FailPolicy: config.FailClosed}, nil, logger.NewNop())

	res, err := f.FetchByTrainers(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, res.Failed)
	assert.NotContains(t, res.ByTrainer, int64(2))

	pool := []domain.Trainer{{ID: 1}, {ID: 2}, {ID: 5}}
	assert.Equal(t, []domain.Trainer{{ID: 1}, {ID: 5}}, res.FilterPool(pool))
}

func TestFetchByTrainers_TimeoutCountsAsFailure(t *testing.T) {
	src := &fakeSource{
		schedules: map[int64][]domain.Schedule{1: busy(1)},
		hang:      map[int64]bool{2: true},
	}
	m := &countingMetrics{}
	f := NewFetcher(src, Options{Timeout: 30 * time.Millisecond, MaxConcurrency: 2, FailPolicy: config.FailClosed}, m, logger.NewNop())

	res, err := f.FetchByTrainers(context.Background(), []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, res.Failed)
	assert.Equal(t, 1, m.outcomes[metrics.OutcomeTimeout])
}

func TestFetchByTrainers_BoundedConcurrency(t *testing.T) {
	src := &fakeSource{delay: 10 * time.Millisecond}
	f := NewFetcher(src, Options{Timeout: time.Second, MaxConcurrency: 3}, nil, logger.NewNop())

	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	res, err := f.FetchByTrainers(context.Background(), ids)
	require.NoError(t, err)

	assert.Len(t, res.ByTrainer, len(ids))
	assert.LessOrEqual(t, src.maxInFlight.Load(), int32(3))
}

func TestFetchByTrainers_ParentCancelled(t *testing.T) {
	src := &fakeSource{hang: map[int64]bool{1: true}}
	f := NewFetcher(src, Options{Timeout: time.Second, MaxConcurrency: 1}, nil, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchByTrainers(ctx, []int64{1})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestFetchOne_IgnoresPolicy(t *testing.T) {
	src := &fakeSource{errs: map[int64]error{4: errors.New("boom")}}
	f := NewFetcher(src, Options{Timeout: time.Second, MaxConcurrency: 1, FailPolicy: config.FailOpen}, nil, logger.NewNop())

	_, err := f.FetchOne(context.Background(), 4)
	assert.ErrorIs(t, err, ErrFetchFailed)
}
