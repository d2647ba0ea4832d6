package reassignment

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reassignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reassignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reassignment.repository: failed to scan row")

	// ErrNotInTransaction возвращается, когда блокировка запрошена вне транзакции
	ErrNotInTransaction = errors.New("reassignment.repository: advisory lock requires a transaction")

	// ErrInvalidLockKey возвращается, когда id тренера не помещается в ключ блокировки
	ErrInvalidLockKey = errors.New("reassignment.repository: trainer id out of lock key range")
)
