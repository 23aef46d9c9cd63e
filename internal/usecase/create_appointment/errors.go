package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrSlotBlocked возвращается, когда слот закрыт расписанием или исключением
	ErrSlotBlocked = errors.New("create_appointment: slot is blocked")

	// ErrSlotFull возвращается, когда все места слота заняты
	ErrSlotFull = errors.New("create_appointment: slot is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInconsistentSchedule возвращается при противоречивых данных расписания
	ErrInconsistentSchedule = errors.New("create_appointment: inconsistent schedule data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
