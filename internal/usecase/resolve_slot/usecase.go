package resolve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsalazarv/MCS-AgendaService/internal/availability"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	catalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
)

// UseCase use case для проверки доступности конкретного слота.
// В отличие от перечисления слотов, проверяет произвольное время начала,
// в том числе не попадающее в регулярную сетку
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

// Execute выполняет use case проверки слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSlot: agenda=%d, service=%d, date=%s, time=%s",
		req.AgendaID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetByID(ctx, req.AgendaID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("ResolveSlot: service id=%d not found in agenda=%d", req.ServiceID, req.AgendaID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ResolveSlot: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Собираем снимок расписания на дату
	snap, err := loadSnapshot(ctx, req.AgendaID, req.Date, uc.scheduleRepo, uc.exceptionRepo, uc.apptRepo)
	if err != nil {
		uc.logger.Error("ResolveSlot: failed to load schedule snapshot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Выносим вердикт по слоту
	verdict, err := availability.Resolve(service, req.Date, req.StartTime, snap)
	if err != nil {
		if errors.Is(err, availability.ErrDataInconsistency) {
			uc.logger.Error("ResolveSlot: inconsistent schedule data for agenda=%d: %v", req.AgendaID, err)
			return nil, fmt.Errorf("%w: %v", ErrInconsistentSchedule, err)
		}
		uc.logger.Warn("ResolveSlot: resolution failed for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("ResolveSlot: agenda=%d, service=%d, date=%s, time=%s: outcome=%s reason=%s",
		req.AgendaID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime,
		verdict.Outcome, verdict.Reason)

	return &Response{
		AgendaID:        req.AgendaID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: service.DurationMinutes,
		Outcome:         string(verdict.Outcome),
		Reason:          string(verdict.Reason),
	}, nil
}
