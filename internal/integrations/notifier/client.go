package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы со шлюзом уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAppointmentCreated отправляет уведомление о созданной записи
func (c *Client) SendAppointmentCreated(ctx context.Context, event AppointmentEvent) error {
	event.Event = EventAppointmentCreated
	return c.send(ctx, event)
}

// SendAppointmentCancelled отправляет уведомление об отмененной записи
func (c *Client) SendAppointmentCancelled(ctx context.Context, event AppointmentEvent) error {
	event.Event = EventAppointmentCancelled
	return c.send(ctx, event)
}

// NotifyWithGracefulDegradation отправляет событие с graceful degradation.
// При недоступности шлюза возвращает ErrServiceDegraded: запись уже создана,
// вызывающая сторона логирует ошибку и продолжает работу
func (c *Client) NotifyWithGracefulDegradation(ctx context.Context, event AppointmentEvent) error {
	c.log.Info("Sending notification event=%s for appointment_id=%d", event.Event, event.AppointmentID)

	if err := c.send(ctx, event); err != nil {
		// Недоступность шлюза, timeout, некорректный ответ - всё не критично
		// для самой записи, но повышаем уровень логирования до ERROR,
		// чтобы быстрее заметить проблему
		c.log.Error("Notification gateway unavailable, applying graceful degradation for appointment_id=%d: %v", event.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, event.AppointmentID, err)
	}

	c.log.Info("Successfully sent notification event=%s for appointment_id=%d", event.Event, event.AppointmentID)
	return nil
}

func (c *Client) send(ctx context.Context, event AppointmentEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/events", c.baseURL)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: gateway rejected event payload", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
