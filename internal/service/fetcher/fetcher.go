package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-GymScheduleService/internal/config"
	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	"github.com/m04kA/SMC-GymScheduleService/pkg/metrics"
)

const defaultTimeout = 5 * time.Second

// Options параметры загрузки
type Options struct {
	Timeout        time.Duration // таймаут одного запроса
	MaxConcurrency int
	FailPolicy     config.FailPolicy
}

// Result расписания по тренерам
type Result struct {
	ByTrainer map[int64][]domain.Schedule
	// Failed тренеры, чьи расписания загрузить не удалось (при любой политике)
	Failed []int64
	// excluded тренеры, которых нельзя предлагать (fail-closed)
	excluded map[int64]struct{}
}

// FilterPool убирает из пула тренеров, исключенных политикой fail-closed
func (r *Result) FilterPool(pool []domain.Trainer) []domain.Trainer {
	if len(r.excluded) == 0 {
		return pool
	}
	result := make([]domain.Trainer, 0, len(pool))
	for _, t := range pool {
		if _, ok := r.excluded[t.ID]; ok {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Fetcher загружает расписания нескольких тренеров параллельно
type Fetcher struct {
	source  ScheduleSource
	opts    Options
	metrics MetricsObserver
	logger  Logger
}

// NewFetcher создает загрузчик. metrics может быть nil.
func NewFetcher(source ScheduleSource, opts Options, m MetricsObserver, logger Logger) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 1
	}
	if opts.FailPolicy == "" {
		opts.FailPolicy = config.FailOpen
	}
	return &Fetcher{
		source:  source,
		opts:    opts,
		metrics: m,
		logger:  logger,
	}
}

func (f *Fetcher) Policy() config.FailPolicy {
	return f.opts.FailPolicy
}

type slot struct {
	schedules []domain.Schedule
	err       error
}

// FetchByTrainers загружает расписания всех тренеров (fan-out, join-all).
// Каждый запрос пишет в свой слот, поэтому синхронизация не нужна.
// Ошибка одного тренера обрабатывается по FailPolicy, а не прерывает загрузку.
func (f *Fetcher) FetchByTrainers(ctx context.Context, trainerIDs []int64) (*Result, error) {
	slots := make([]slot, len(trainerIDs))

	var g errgroup.Group
	g.SetLimit(f.opts.MaxConcurrency)

	for i, id := range trainerIDs {
		g.Go(func() error {
			schedules, err := f.fetch(ctx, id)
			slots[i] = slot{schedules: schedules, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}

	result := &Result{
		ByTrainer: make(map[int64][]domain.Schedule, len(trainerIDs)),
		excluded:  make(map[int64]struct{}),
	}

	for i, id := range trainerIDs {
		s := slots[i]
		if s.err == nil {
			result.ByTrainer[id] = s.schedules
			continue
		}

		result.Failed = append(result.Failed, id)
		switch f.opts.FailPolicy {
		case config.FailClosed:
			f.logger.Warn("FetchByTrainers: trainer id=%d excluded, schedules unavailable: %v", id, s.err)
			result.excluded[id] = struct{}{}
		default:
			f.logger.Warn("FetchByTrainers: trainer id=%d treated as free, schedules unavailable: %v", id, s.err)
			result.ByTrainer[id] = []domain.Schedule{}
		}
	}

	return result, nil
}

// FetchOne загружает расписания одного тренера без применения FailPolicy
func (f *Fetcher) FetchOne(ctx context.Context, trainerID int64) ([]domain.Schedule, error) {
	schedules, err := f.fetch(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (f *Fetcher) fetch(ctx context.Context, trainerID int64) ([]domain.Schedule, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	schedules, err := f.source.GetSchedulesByTrainer(fetchCtx, trainerID)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			outcome = metrics.OutcomeTimeout
		}
		f.observe(outcome)
		return nil, fmt.Errorf("%w: trainer id=%d (%s): %v", ErrFetchFailed, trainerID, outcome, err)
	}

	f.observe(metrics.OutcomeSuccess)
	return schedules, nil
}

func (f *Fetcher) observe(outcome string) {
	if f.metrics != nil {
		f.metrics.ObserveFetch(outcome)
	}
}
