package fetcher

import "errors"

var (
	// ErrFetchFailed возвращается при ошибке или таймауте запроса расписания
	ErrFetchFailed = errors.New("fetcher: failed to fetch trainer schedules")

	// ErrCancelled возвращается, когда родительский контекст отменён во время загрузки
	ErrCancelled = errors.New("fetcher: cancelled")
)
