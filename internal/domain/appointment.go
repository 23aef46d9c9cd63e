package domain

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// AppointmentStatus represents the confirmation status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatuses all statuses an appointment may carry
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// Appointment represents a scheduled visit on an agenda
type Appointment struct {
	ID              int64
	AgendaID        int64
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Patient data, denormalized onto the appointment row
	PatientName string
	Document    *string
	Phone       *string
	Email       *string
	Notes       *string

	// Multi-session treatment package bookkeeping
	SessionNumber int
	TotalSessions int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CountsTowardCapacity returns true if the appointment occupies a concurrency
// spot. Cancelled appointments never count.
func (a *Appointment) CountsTowardCapacity() bool {
	return !a.IsCancelled()
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// SameService returns true if the appointment belongs to the given service
func (a *Appointment) SameService(serviceName string) bool {
	return a.ServiceName == serviceName
}

// SamePatient returns true if the appointment belongs to the same patient as
// other. Patients are matched by document when both rows carry one, otherwise
// by full name.
func (a *Appointment) SamePatient(other *Appointment) bool {
	if a.Document != nil && other.Document != nil && *a.Document != "" {
		return *a.Document == *other.Document
	}
	return a.PatientName == other.PatientName
}

// AgendaAppointmentsFilter фильтр для выборки бронирований агенды
type AgendaAppointmentsFilter struct {
	AgendaID         int64              // Обязательный параметр
	ServiceName      *string            // Фильтр по услуге (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
