package get_next_session_slots

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда исходная запись не найдена
	ErrAppointmentNotFound = errors.New("get_next_session_slots: appointment not found")

	// ErrServiceNotFound возвращается, когда услуга записи больше не существует
	ErrServiceNotFound = errors.New("get_next_session_slots: service not found")

	// ErrPackageComplete возвращается, когда все сеансы пакета уже назначены
	ErrPackageComplete = errors.New("get_next_session_slots: all package sessions are scheduled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_next_session_slots: invalid input data")

	// ErrInconsistentSchedule возвращается при противоречивых данных расписания
	ErrInconsistentSchedule = errors.New("get_next_session_slots: inconsistent schedule data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_next_session_slots: internal error")
)
