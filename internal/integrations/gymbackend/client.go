package gymbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-GymScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для REST API gym backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента gym backend
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSchedule получает расписание по ID
func (c *Client) GetSchedule(ctx context.Context, scheduleID int64) (*domain.Schedule, error) {
	url := fmt.Sprintf("%s/api/schedules/%d", c.baseURL, scheduleID)

	var schedule Schedule
	if err := c.do(ctx, http.MethodGet, url, nil, &schedule, ErrScheduleNotFound); err != nil {
		return nil, err
	}

	result := c.toDomainSchedule(&schedule)
	return &result, nil
}

// GetSchedulesByTrainer получает все расписания тренера в любом статусе
func (c *Client) GetSchedulesByTrainer(ctx context.Context, trainerID int64) ([]domain.Schedule, error) {
	url := fmt.Sprintf("%s/api/trainers/%d/schedules", c.baseURL, trainerID)

	var schedules []Schedule
	if err := c.do(ctx, http.MethodGet, url, nil, &schedules, ErrTrainerNotFound); err != nil {
		return nil, err
	}

	result := make([]domain.Schedule, len(schedules))
	for i := range schedules {
		result[i] = c.toDomainSchedule(&schedules[i])
	}
	return result, nil
}

// GetTrainers получает всех тренеров и сотрудников
func (c *Client) GetTrainers(ctx context.Context) ([]domain.Trainer, error) {
	url := fmt.Sprintf("%s/api/trainers", c.baseURL)

	var trainers []Trainer
	if err := c.do(ctx, http.MethodGet, url, nil, &trainers, ErrTrainerNotFound); err != nil {
		return nil, err
	}

	result := make([]domain.Trainer, len(trainers))
	for i := range trainers {
		result[i] = trainers[i].ToDomain()
	}
	return result, nil
}

// ReassignSchedule назначает расписанию другого тренера
func (c *Client) ReassignSchedule(ctx context.Context, scheduleID, trainerID int64) (*domain.Schedule, error) {
	url := fmt.Sprintf("%s/api/schedules/%d/trainer", c.baseURL, scheduleID)

	body, err := json.Marshal(ReassignRequest{TrainerID: trainerID})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	var schedule Schedule
	if err := c.do(ctx, http.MethodPut, url, body, &schedule, ErrScheduleNotFound); err != nil {
		return nil, err
	}

	c.log.Info("Schedule id=%d reassigned to trainer id=%d in gym backend", scheduleID, trainerID)

	result := c.toDomainSchedule(&schedule)
	return &result, nil
}

// toDomainSchedule конвертирует расписание и предупреждает о неизвестном статусе
func (c *Client) toDomainSchedule(s *Schedule) domain.Schedule {
	result := s.ToDomain()
	if !result.Status.IsValid() {
		c.log.Warn("Schedule id=%d has unknown status %q, treating it as occupying trainer id=%d",
			s.ID, s.Status, s.TrainerID)
	}
	return result
}

// do выполняет запрос и декодирует JSON ответ в out
// notFound возвращается при 404
func (c *Client) do(ctx context.Context, method, url string, body []byte, out interface{}, notFound error) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readErrorMessage(resp.Body))
	case http.StatusBadRequest:
		return fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, readErrorMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readErrorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage извлекает message из ErrorResponse, иначе возвращает тело как есть
func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
