package garageservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// userIDHeader заголовок, которым внешний API идентифицирует пользователя
const userIDHeader = "X-User-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс учета запросов к внешнему API
type MetricsRecorder interface {
	ObserveUpstreamRequest(operation, outcome string)
}

// Client клиент для работы с внешним API записи на сервис
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента внешнего API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetMetrics включает учет запросов к внешнему API
func (c *Client) SetMetrics(m MetricsRecorder) {
	c.metrics = m
}

// observe учитывает исход запроса, если метрики включены
func (c *Client) observe(operation string, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstreamRequest(operation, outcome)
}

// ListSymptoms получает каталог симптомов
func (c *Client) ListSymptoms(ctx context.Context) ([]domain.Symptom, error) {
	var envelope symptomsEnvelope
	err := c.getJSON(ctx, c.baseURL+"/symptoms", 0, &envelope)
	c.observe("list_symptoms", err)
	if err != nil {
		return nil, err
	}

	symptoms := make([]domain.Symptom, 0, len(envelope.Data))
	for _, s := range envelope.Data {
		symptoms = append(symptoms, s.ToDomain())
	}
	return symptoms, nil
}

// ListUserVehicles получает список мотоциклов пользователя
func (c *Client) ListUserVehicles(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	var raw []Vehicle
	err := c.getJSON(ctx, c.baseURL+"/vehicles/user", userID, &raw)
	c.observe("list_user_vehicles", err)
	if err != nil {
		return nil, err
	}

	vehicles := make([]domain.Vehicle, 0, len(raw))
	for _, v := range raw {
		vehicles = append(vehicles, v.ToDomain())
	}
	return vehicles, nil
}

// GetAvailableSlots получает доступные слоты на дату для типа сервиса.
// Ответ внешнего API авторитетен: пустой список - валидный результат
// "все занято", а не ошибка.
func (c *Client) GetAvailableSlots(ctx context.Context, date time.Time, serviceType domain.ServiceType) ([]types.TimeString, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	query.Set("serviceType", string(serviceType))

	var raw []string
	err := c.getJSON(ctx, c.baseURL+"/reservations/available-slots?"+query.Encode(), 0, &raw)
	c.observe("get_available_slots", err)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, len(raw))
	for _, s := range raw {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed slot %q: %v", ErrInvalidResponse, s, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// CreateReservation создает запись на сервис.
// При отказе внешнего API (4xx с телом {error}) возвращается
// *RejectionError с дословным текстом причины.
func (c *Client) CreateReservation(ctx context.Context, userID int64, reqBody *CreateReservationRequest) (*domain.Reservation, error) {
	reservation, err := c.createReservation(ctx, userID, reqBody)
	c.observe("create_reservation", err)
	return reservation, err
}

func (c *Client) createReservation(ctx context.Context, userID int64, reqBody *CreateReservationRequest) (*domain.Reservation, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reservations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(userIDHeader, strconv.FormatInt(userID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Отказ с текстом причины - показывается пользователю дословно
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return nil, fmt.Errorf("%w: rejection without error body, status %d", ErrInvalidResponse, resp.StatusCode)
		}
		c.log.Warn("CreateReservation rejected by upstream: user=%d, reason=%s", userID, apiErr.Error)
		return nil, &RejectionError{Message: apiErr.Error}
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created Reservation
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	reservation, err := created.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed reservation in response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateReservation: created reservation id=%d for user=%d", reservation.ID, userID)
	return reservation, nil
}

// ListUserReservations получает историю записей пользователя
func (c *Client) ListUserReservations(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	var raw []Reservation
	err := c.getJSON(ctx, c.baseURL+"/reservations/user", userID, &raw)
	c.observe("list_user_reservations", err)
	if err != nil {
		return nil, err
	}

	reservations := make([]*domain.Reservation, 0, len(raw))
	for _, r := range raw {
		reservation, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed reservation id=%d: %v", ErrInvalidResponse, r.ID, err)
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ.
// userID > 0 добавляет заголовок идентификации пользователя.
func (c *Client) getJSON(ctx context.Context, rawURL string, userID int64, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(userIDHeader, strconv.FormatInt(userID, 10))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
