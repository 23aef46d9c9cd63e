package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsalazarv/MCS-AgendaService/internal/availability"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	catalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
)

// UseCase use case для получения доступных слотов услуги на дату
type UseCase struct {
	apptRepo      AppointmentRepository
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	catalogRepo   ServiceCatalogRepository
	timeProvider  TimeProvider
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
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: agenda=%d, service=%d, date=%s",
		req.AgendaID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetByID(ctx, req.AgendaID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in agenda=%d", req.ServiceID, req.AgendaID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Собираем снимок расписания на дату
	snap, err := loadSnapshot(ctx, req.AgendaID, req.Date, uc.scheduleRepo, uc.exceptionRepo, uc.apptRepo)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load schedule snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Перечисляем слоты
	slots, err := availability.Enumerate(service, req.Date, snap)
	if err != nil {
		if errors.Is(err, availability.ErrDataInconsistency) {
			uc.logger.Error("GetAvailableSlots: inconsistent schedule data for agenda=%d: %v", req.AgendaID, err)
			return nil, fmt.Errorf("%w: %v", ErrInconsistentSchedule, err)
		}
		uc.logger.Warn("GetAvailableSlots: enumeration failed for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetAvailableSlots: agenda=%d, service=%d, date=%s: %d available, %d full, day=%s",
		req.AgendaID, req.ServiceID, req.Date.Format(domain.DateFormat),
		len(slots.Available), len(slots.Full), slots.Verdict.Outcome)

	return &Response{
		AgendaID:        req.AgendaID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Available:       slots.Available,
		Full:            slots.Full,
		DayStatus:       string(slots.Verdict.Outcome),
		DayReason:       string(slots.Verdict.Reason),
	}, nil
}
