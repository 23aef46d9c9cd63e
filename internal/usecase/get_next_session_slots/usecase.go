package get_next_session_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsalazarv/MCS-AgendaService/internal/availability"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	apptRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/appointment"
	catalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
)

// UseCase use case для подбора слотов следующего сеанса пакета лечения.
// Услуга и длительность берутся из предыдущего сеанса, номер сеанса
// наращивается на единицу
type UseCase struct {
	apptRepo      AppointmentRepository
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	catalogRepo   ServiceCatalogRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	catalogRepo ServiceCatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:      apptRepo,
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		catalogRepo:   catalogRepo,
		logger:        logger,
	}
}

// Execute выполняет use case подбора слотов следующего сеанса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetNextSessionSlots: appointment=%d, date=%s",
		req.AppointmentID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetNextSessionSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем предыдущий сеанс
	prev, err := uc.apptRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("GetNextSessionSlots: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetNextSessionSlots: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Строим план следующего сеанса
	plan, err := availability.PlanNextSession(prev)
	if err != nil {
		if errors.Is(err, availability.ErrDataInconsistency) {
			uc.logger.Error("GetNextSessionSlots: inconsistent session data for appointment id=%d: %v", req.AppointmentID, err)
			return nil, fmt.Errorf("%w: %v", ErrInconsistentSchedule, err)
		}
		uc.logger.Warn("GetNextSessionSlots: planning failed for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Пакет исчерпан, когда предыдущий сеанс был последним
	if plan.SessionNumber > plan.TotalSessions {
		uc.logger.Warn("GetNextSessionSlots: package complete for appointment id=%d (%d/%d sessions)",
			req.AppointmentID, prev.SessionNumber, plan.TotalSessions)
		return nil, ErrPackageComplete
	}

	// 5. Услуга должна всё ещё существовать в каталоге агенды
	service, err := uc.catalogRepo.GetByName(ctx, prev.AgendaID, plan.ServiceName)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetNextSessionSlots: service %q not found in agenda=%d", plan.ServiceName, prev.AgendaID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetNextSessionSlots: failed to get service %q: %v", plan.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Собираем снимок расписания на дату
	snap, err := loadSnapshot(ctx, prev.AgendaID, req.Date, uc.scheduleRepo, uc.exceptionRepo, uc.apptRepo)
	if err != nil {
		uc.logger.Error("GetNextSessionSlots: failed to load schedule snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 7. Перечисляем слоты для той же услуги
	slots, err := availability.Enumerate(service, req.Date, snap)
	if err != nil {
		if errors.Is(err, availability.ErrDataInconsistency) {
			uc.logger.Error("GetNextSessionSlots: inconsistent schedule data for agenda=%d: %v", prev.AgendaID, err)
			return nil, fmt.Errorf("%w: %v", ErrInconsistentSchedule, err)
		}
		uc.logger.Warn("GetNextSessionSlots: enumeration failed for agenda=%d: %v", prev.AgendaID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetNextSessionSlots: appointment=%d, session %d/%d, date=%s: %d available, %d full",
		req.AppointmentID, plan.SessionNumber, plan.TotalSessions,
		req.Date.Format(domain.DateFormat), len(slots.Available), len(slots.Full))

	return &Response{
		AgendaID:        prev.AgendaID,
		ServiceID:       service.ID,
		ServiceName:     plan.ServiceName,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		SessionNumber:   plan.SessionNumber,
		TotalSessions:   plan.TotalSessions,
		Available:       slots.Available,
		Full:            slots.Full,
		DayStatus:       string(slots.Verdict.Outcome),
		DayReason:       string(slots.Verdict.Reason),
	}, nil
}
