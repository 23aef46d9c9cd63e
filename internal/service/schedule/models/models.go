package models

import (
	"errors"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidKind возвращается при неизвестном типе исключения
	ErrInvalidKind = errors.New("invalid exception kind")
)

// Request модели

// HourRangeInput диапазон часов в запросе
type HourRangeInput struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = понедельник ... 6 = воскресенье
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// ServiceHourRangeInput диапазон часов услуги в запросе
type ServiceHourRangeInput struct {
	ServiceID int64  `json:"serviceId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UpdateWeeklyHoursRequest запрос на замену недельного расписания
type UpdateWeeklyHoursRequest struct {
	AgendaID int64            `json:"agendaId"`
	Ranges   []HourRangeInput `json:"ranges"`
}

// UpdateServiceHoursRequest запрос на замену расписания услуг
type UpdateServiceHoursRequest struct {
	AgendaID int64                   `json:"agendaId"`
	Ranges   []ServiceHourRangeInput `json:"ranges"`
}

// CreateExceptionRequest запрос на создание исключения расписания
type CreateExceptionRequest struct {
	AgendaID  int64   `json:"agendaId"`
	ServiceID *int64  `json:"serviceId,omitempty"` // nil = на все услуги
	Kind      string  `json:"kind"`                // "block" или "enable"
	DateStart string  `json:"dateStart"`           // "2025-10-15"
	DateEnd   string  `json:"dateEnd"`             // "2025-10-15"
	AllDay    bool    `json:"allDay"`
	TimeStart *string `json:"timeStart,omitempty"` // обязателен, когда AllDay = false
	TimeEnd   *string `json:"timeEnd,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// GetScheduleConfigRequest запрос конфигурации расписания
type GetScheduleConfigRequest struct {
	AgendaID int64      `json:"agendaId"`
	From     *time.Time `json:"from,omitempty"` // Период для выборки исключений (опционально)
	To       *time.Time `json:"to,omitempty"`
}

// Методы конвертации запросов

// ToDomainWeeklyRanges конвертирует запрос в domain модели с парсингом времени
func (r *UpdateWeeklyHoursRequest) ToDomainWeeklyRanges() ([]domain.WeeklyHourRange, error) {
	ranges := make([]domain.WeeklyHourRange, 0, len(r.Ranges))
	for _, in := range r.Ranges {
		start, err := types.NewTimeStringFromString(in.StartTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		end, err := types.NewTimeStringFromString(in.EndTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		ranges = append(ranges, domain.WeeklyHourRange{
			AgendaID:  r.AgendaID,
			DayOfWeek: domain.DayOfWeek(in.DayOfWeek),
			StartTime: start,
			EndTime:   end,
		})
	}
	return ranges, nil
}

// ToDomainServiceRanges конвертирует запрос в domain модели с парсингом времени
func (r *UpdateServiceHoursRequest) ToDomainServiceRanges() ([]domain.ServiceHourRange, error) {
	ranges := make([]domain.ServiceHourRange, 0, len(r.Ranges))
	for _, in := range r.Ranges {
		start, err := types.NewTimeStringFromString(in.StartTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		end, err := types.NewTimeStringFromString(in.EndTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		ranges = append(ranges, domain.ServiceHourRange{
			AgendaID:  r.AgendaID,
			ServiceID: in.ServiceID,
			DayOfWeek: domain.DayOfWeek(in.DayOfWeek),
			StartTime: start,
			EndTime:   end,
		})
	}
	return ranges, nil
}

// ToDomainException конвертирует запрос в domain модель
func (r *CreateExceptionRequest) ToDomainException() (*domain.Exception, error) {
	kind := domain.ExceptionKind(r.Kind)
	if kind != domain.KindBlock && kind != domain.KindEnable {
		return nil, ErrInvalidKind
	}

	dateStart, err := time.Parse(domain.DateFormat, r.DateStart)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dateEnd, err := time.Parse(domain.DateFormat, r.DateEnd)
	if err != nil {
		return nil, ErrInvalidDate
	}

	e := &domain.Exception{
		AgendaID:  r.AgendaID,
		ServiceID: r.ServiceID,
		Kind:      kind,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		AllDay:    r.AllDay,
		Reason:    r.Reason,
	}

	if !r.AllDay {
		if r.TimeStart == nil || r.TimeEnd == nil {
			return nil, ErrInvalidTime
		}
		start, err := types.NewTimeStringFromString(*r.TimeStart)
		if err != nil {
			return nil, ErrInvalidTime
		}
		end, err := types.NewTimeStringFromString(*r.TimeEnd)
		if err != nil {
			return nil, ErrInvalidTime
		}
		e.TimeStart = &start
		e.TimeEnd = &end
	}

	return e, nil
}

// Response модели

// HourRangeResponse диапазон часов в ответе
type HourRangeResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ServiceHourRangeResponse диапазон часов услуги в ответе
type ServiceHourRangeResponse struct {
	ID        int64  `json:"id"`
	ServiceID int64  `json:"serviceId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ExceptionResponse исключение расписания в ответе
type ExceptionResponse struct {
	ID        int64   `json:"id"`
	ServiceID *int64  `json:"serviceId,omitempty"`
	Kind      string  `json:"kind"`
	DateStart string  `json:"dateStart"`
	DateEnd   string  `json:"dateEnd"`
	AllDay    bool    `json:"allDay"`
	TimeStart *string `json:"timeStart,omitempty"`
	TimeEnd   *string `json:"timeEnd,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// ScheduleConfigResponse полная конфигурация расписания агенды
type ScheduleConfigResponse struct {
	AgendaID     int64                      `json:"agendaId"`
	WeeklyHours  []HourRangeResponse        `json:"weeklyHours"`
	ServiceHours []ServiceHourRangeResponse `json:"serviceHours"`
	Exceptions   []ExceptionResponse        `json:"exceptions"`
}

// Методы конвертации ответов

// FromDomainWeeklyRanges конвертирует domain модели в DTO
func FromDomainWeeklyRanges(ranges []domain.WeeklyHourRange) []HourRangeResponse {
	resp := make([]HourRangeResponse, len(ranges))
	for i, r := range ranges {
		resp[i] = HourRangeResponse{
			ID:        r.ID,
			DayOfWeek: int(r.DayOfWeek),
			StartTime: r.StartTime.String(),
			EndTime:   r.EndTime.String(),
		}
	}
	return resp
}

// FromDomainServiceRanges конвертирует domain модели в DTO
func FromDomainServiceRanges(ranges []domain.ServiceHourRange) []ServiceHourRangeResponse {
	resp := make([]ServiceHourRangeResponse, len(ranges))
	for i, r := range ranges {
		resp[i] = ServiceHourRangeResponse{
			ID:        r.ID,
			ServiceID: r.ServiceID,
			DayOfWeek: int(r.DayOfWeek),
			StartTime: r.StartTime.String(),
			EndTime:   r.EndTime.String(),
		}
	}
	return resp
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.Exception) *ExceptionResponse {
	if e == nil {
		return nil
	}

	resp := &ExceptionResponse{
		ID:        e.ID,
		ServiceID: e.ServiceID,
		Kind:      string(e.Kind),
		DateStart: e.DateStart.Format(domain.DateFormat),
		DateEnd:   e.DateEnd.Format(domain.DateFormat),
		AllDay:    e.AllDay,
		Reason:    e.Reason,
	}

	if e.TimeStart != nil {
		s := e.TimeStart.String()
		resp.TimeStart = &s
	}
	if e.TimeEnd != nil {
		s := e.TimeEnd.String()
		resp.TimeEnd = &s
	}

	return resp
}

// FromDomainExceptions конвертирует список domain моделей в DTO
func FromDomainExceptions(exceptions []domain.Exception) []ExceptionResponse {
	resp := make([]ExceptionResponse, len(exceptions))
	for i := range exceptions {
		resp[i] = *FromDomainException(&exceptions[i])
	}
	return resp
}
