package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsalazarv/MCS-AgendaService/internal/availability"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	catalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
	"github.com/dsalazarv/MCS-AgendaService/internal/integrations/notifier"
)

// UseCase use case для создания записи
type UseCase struct {
	apptRepo       AppointmentRepository
	scheduleRepo   ScheduleRepository
	exceptionRepo  ExceptionRepository
	catalogRepo    ServiceCatalogRepository
	notifierClient NotifierClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	catalogRepo ServiceCatalogRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:       apptRepo,
		scheduleRepo:   scheduleRepo,
		exceptionRepo:  exceptionRepo,
		catalogRepo:    catalogRepo,
		notifierClient: notifierClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности слота и вставка записи происходят атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: agenda=%d, service=%d, date=%s, time=%s, patient=%s",
		req.AgendaID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.PatientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetByID(ctx, req.AgendaID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found in agenda=%d", req.ServiceID, req.AgendaID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Собираем снимок расписания с блокировкой записей даты
		snap, err := loadSnapshot(txCtx, req.AgendaID, req.Date, uc.scheduleRepo, uc.exceptionRepo, uc.apptRepo)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load schedule snapshot: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность слота под блокировкой
		verdict, err := availability.Resolve(service, req.Date, req.StartTime, snap)
		if err != nil {
			if errors.Is(err, availability.ErrDataInconsistency) {
				uc.logger.Error("CreateAppointment: inconsistent schedule data for agenda=%d: %v", req.AgendaID, err)
				return fmt.Errorf("%w: %v", ErrInconsistentSchedule, err)
			}
			uc.logger.Warn("CreateAppointment: resolution failed for agenda=%d: %v", req.AgendaID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		switch {
		case verdict.IsBlocked():
			uc.logger.Warn("CreateAppointment: slot %s %s is blocked, reason=%s",
				req.Date.Format(domain.DateFormat), req.StartTime, verdict.Reason)
			return fmt.Errorf("%w: %s", ErrSlotBlocked, verdict.Reason)
		case verdict.IsFull():
			uc.logger.Warn("CreateAppointment: slot %s %s is full",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotFull
		}

		// 5.3. Определяем номер сеанса внутри пакета
		sessionNumber := req.SessionNumber
		if sessionNumber == 0 {
			sessionNumber = 1
		}

		// 5.4. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			AgendaID:        req.AgendaID,
			ServiceName:     service.Name,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusConfirmed,
			PatientName:     req.PatientName,
			Document:        req.Document,
			Phone:           req.Phone,
			Email:           req.Email,
			Notes:           req.Notes,
			SessionNumber:   sessionNumber,
			TotalSessions:   service.TotalSessions,
		}

		// 5.5. Сохраняем запись
		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. Уведомляем пациента о созданной записи
	// Недоступность шлюза не откатывает уже созданную запись
	event := notifier.AppointmentEvent{
		Event:         notifier.EventAppointmentCreated,
		AgendaID:      result.AgendaID,
		AppointmentID: result.ID,
		ServiceName:   result.ServiceName,
		Date:          result.Date.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
		PatientName:   result.PatientName,
		Phone:         result.Phone,
		Email:         result.Email,
	}
	if err := uc.notifierClient.NotifyWithGracefulDegradation(ctx, event); err != nil {
		uc.logger.Warn("CreateAppointment: notification skipped for appointment id=%d: %v", result.ID, err)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		AgendaID:        result.AgendaID,
		ServiceID:       req.ServiceID,
		ServiceName:     result.ServiceName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PatientName:     result.PatientName,
		Document:        result.Document,
		Phone:           result.Phone,
		Email:           result.Email,
		Notes:           result.Notes,
		SessionNumber:   result.SessionNumber,
		TotalSessions:   result.TotalSessions,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
