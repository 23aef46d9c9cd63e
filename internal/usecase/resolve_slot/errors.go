package resolve_slot

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("resolve_slot: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_slot: invalid input data")

	// ErrInconsistentSchedule возвращается при противоречивых данных расписания
	ErrInconsistentSchedule = errors.New("resolve_slot: inconsistent schedule data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_slot: internal error")
)
