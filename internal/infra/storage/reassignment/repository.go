package reassignment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
	"github.com/m04kA/SMC-GymScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GymScheduleService/pkg/txmanager"
)

const table = "schedule_reassignments"

// Ключ pg_advisory_xact_lock(bigint): старшие 16 бит namespace, младшие 48 бит id тренера
const (
	trainerLockNamespace = 7301
	trainerLockIDBits    = 48
	maxLockableTrainerID = int64(1)<<trainerLockIDBits - 1
)

// trainerLockKey собирает ключ блокировки без потери битов id
func trainerLockKey(trainerID int64) (int64, error) {
	if trainerID <= 0 || trainerID > maxLockableTrainerID {
		return 0, fmt.Errorf("%w: trainerID=%d", ErrInvalidLockKey, trainerID)
	}
	return int64(trainerLockNamespace)<<trainerLockIDBits | trainerID, nil
}

var columns = []string{
	"id",
	"schedule_id",
	"from_trainer_id",
	"to_trainer_id",
	"actor_id",
	"request_id",
	"start_time",
	"duration_minutes",
	"created_at",
}

// Repository журнал переназначений расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал
// Если в контексте есть транзакция, запись попадает в неё
func (r *Repository) Create(ctx context.Context, rec *domain.Reassignment) (*domain.Reassignment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"schedule_id",
			"from_trainer_id",
			"to_trainer_id",
			"actor_id",
			"request_id",
			"start_time",
			"duration_minutes",
		).
		Values(
			rec.ScheduleID,
			rec.FromTrainerID,
			rec.ToTrainerID,
			rec.ActorID,
			rec.RequestID,
			rec.StartTime,
			rec.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// GetByScheduleID история переназначений одного расписания, новые первыми
func (r *Repository) GetByScheduleID(ctx context.Context, scheduleID int64) ([]*domain.Reassignment, error) {
	return r.list(ctx, "GetByScheduleID", squirrel.Eq{"schedule_id": scheduleID})
}

// GetByTrainerID переназначения, где тренер был исходным или новым
func (r *Repository) GetByTrainerID(ctx context.Context, trainerID int64) ([]*domain.Reassignment, error) {
	return r.list(ctx, "GetByTrainerID", squirrel.Or{
		squirrel.Eq{"from_trainer_id": trainerID},
		squirrel.Eq{"to_trainer_id": trainerID},
	})
}

// LockTrainer берет транзакционную advisory-блокировку на тренера.
// Блокировка снимается при commit/rollback, поэтому вызывается только внутри транзакции.
func (r *Repository) LockTrainer(ctx context.Context, trainerID int64) error {
	if !txmanager.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	key, err := trainerLockKey(trainerID)
	if err != nil {
		return err
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?)", key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockTrainer - build lock query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockTrainer - execute lock: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Reassignment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanReassignments(rows)
}

// scanReassignments сканирует результаты запроса в слайс записей журнала
func scanReassignments(rows *sql.Rows) ([]*domain.Reassignment, error) {
	result := make([]*domain.Reassignment, 0)

	for rows.Next() {
		var rec domain.Reassignment
		var requestID sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.ScheduleID,
			&rec.FromTrainerID,
			&rec.ToTrainerID,
			&rec.ActorID,
			&requestID,
			&rec.StartTime,
			&rec.DurationMinutes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReassignments - scan row: %v", ErrScanRow, err)
		}

		rec.RequestID = requestID.String
		rec.CreatedAt = createdAt.Time
		result = append(result, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReassignments - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
