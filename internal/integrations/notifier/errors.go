package notifier

import "errors"

var (
	// ErrInvalidResponse возвращается при неожиданном ответе шлюза уведомлений
	ErrInvalidResponse = errors.New("notifier.client: invalid response")

	// ErrServiceDegraded возвращается, когда шлюз уведомлений недоступен
	// Отправка уведомлений не критична для бронирования: вызывающая сторона
	// логирует и продолжает работу
	ErrServiceDegraded = errors.New("notifier.client: service degraded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier.client: internal error")
)
