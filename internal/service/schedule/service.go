package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	exceptionRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/exception"
	catalogRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/servicecatalog"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/schedule/models"
)

// Горизонт выборки исключений по умолчанию, когда период не указан
const defaultExceptionHorizonDays = 90

// Service сервис для работы с расписанием агенды
type Service struct {
	scheduleRepo  ScheduleRepository
	exceptionRepo ExceptionRepository
	catalogRepo   ServiceCatalogRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	exceptionRepo ExceptionRepository,
	catalogRepo ServiceCatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		exceptionRepo: exceptionRepo,
		catalogRepo:   catalogRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetScheduleConfig возвращает полную конфигурацию расписания агенды:
// недельные часы, часы услуг и исключения за период
func (s *Service) GetScheduleConfig(ctx context.Context, req *models.GetScheduleConfigRequest) (*models.ScheduleConfigResponse, error) {
	s.logger.Info("GetScheduleConfig: fetching config for agenda=%d", req.AgendaID)

	from, to := s.exceptionPeriod(req.From, req.To)

	resp := &models.ScheduleConfigResponse{AgendaID: req.AgendaID}

	// Читаем все три источника в одной read-only транзакции,
	// чтобы получить согласованный снимок
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		weekly, err := s.scheduleRepo.GetWeeklyHours(ctx, req.AgendaID)
		if err != nil {
			return fmt.Errorf("weekly hours: %v", err)
		}

		serviceHours, err := s.scheduleRepo.GetServiceHours(ctx, req.AgendaID)
		if err != nil {
			return fmt.Errorf("service hours: %v", err)
		}

		exceptions, err := s.exceptionRepo.GetByAgendaAndDateRange(ctx, req.AgendaID, from, to)
		if err != nil {
			return fmt.Errorf("exceptions: %v", err)
		}

		resp.WeeklyHours = models.FromDomainWeeklyRanges(weekly)
		resp.ServiceHours = models.FromDomainServiceRanges(serviceHours)
		resp.Exceptions = models.FromDomainExceptions(exceptions)
		return nil
	})
	if err != nil {
		s.logger.Error("GetScheduleConfig: repository error for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: GetScheduleConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetScheduleConfig: fetched %d weekly ranges, %d service ranges, %d exceptions for agenda=%d",
		len(resp.WeeklyHours), len(resp.ServiceHours), len(resp.Exceptions), req.AgendaID)
	return resp, nil
}

// UpdateWeeklyHours заменяет недельное расписание агенды целиком
func (s *Service) UpdateWeeklyHours(ctx context.Context, req *models.UpdateWeeklyHoursRequest) error {
	s.logger.Info("UpdateWeeklyHours: replacing %d ranges for agenda=%d", len(req.Ranges), req.AgendaID)

	ranges, err := req.ToDomainWeeklyRanges()
	if err != nil {
		s.logger.Warn("UpdateWeeklyHours: invalid ranges for agenda=%d: %v", req.AgendaID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for i := range ranges {
		if err := ranges[i].Validate(); err != nil {
			s.logger.Warn("UpdateWeeklyHours: invalid range for agenda=%d: %v", req.AgendaID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// Замена идёт как delete + insert, поэтому оборачиваем в транзакцию
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceWeeklyHours(ctx, req.AgendaID, ranges)
	})
	if err != nil {
		s.logger.Error("UpdateWeeklyHours: repository error for agenda=%d: %v", req.AgendaID, err)
		return fmt.Errorf("%w: UpdateWeeklyHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklyHours: successfully replaced weekly hours for agenda=%d", req.AgendaID)
	return nil
}

// UpdateServiceHours заменяет расписание услуг агенды целиком.
// Наличие хотя бы одной строки переводит агенду в режим, где доступны
// только явно перечисленные окна услуг
func (s *Service) UpdateServiceHours(ctx context.Context, req *models.UpdateServiceHoursRequest) error {
	s.logger.Info("UpdateServiceHours: replacing %d ranges for agenda=%d", len(req.Ranges), req.AgendaID)

	ranges, err := req.ToDomainServiceRanges()
	if err != nil {
		s.logger.Warn("UpdateServiceHours: invalid ranges for agenda=%d: %v", req.AgendaID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for i := range ranges {
		if err := ranges[i].Validate(); err != nil {
			s.logger.Warn("UpdateServiceHours: invalid range for agenda=%d: %v", req.AgendaID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// Проверяем, что все услуги существуют в каталоге агенды
	if err := s.checkServicesExist(ctx, req.AgendaID, ranges); err != nil {
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.ReplaceServiceHours(ctx, req.AgendaID, ranges)
	})
	if err != nil {
		s.logger.Error("UpdateServiceHours: repository error for agenda=%d: %v", req.AgendaID, err)
		return fmt.Errorf("%w: UpdateServiceHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateServiceHours: successfully replaced service hours for agenda=%d", req.AgendaID)
	return nil
}

// CreateException создает исключение расписания
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: creating %s exception for agenda=%d, dates=%s..%s",
		req.Kind, req.AgendaID, req.DateStart, req.DateEnd)

	e, err := req.ToDomainException()
	if err != nil {
		s.logger.Warn("CreateException: invalid request for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := e.Validate(); err != nil {
		s.logger.Warn("CreateException: invalid exception for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Если исключение привязано к услуге, проверяем её существование
	if e.ServiceID != nil {
		if _, err := s.catalogRepo.GetByID(ctx, req.AgendaID, *e.ServiceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				s.logger.Warn("CreateException: service id=%d not found in agenda=%d", *e.ServiceID, req.AgendaID)
				return nil, ErrServiceNotFound
			}
			s.logger.Error("CreateException: failed to check service id=%d: %v", *e.ServiceID, err)
			return nil, fmt.Errorf("%w: CreateException - failed to check service: %v", ErrInternal, err)
		}
	}

	created, err := s.exceptionRepo.Create(ctx, e)
	if err != nil {
		s.logger.Error("CreateException: repository error for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: successfully created exception id=%d for agenda=%d", created.ID, req.AgendaID)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет исключение расписания
func (s *Service) DeleteException(ctx context.Context, id int64) error {
	s.logger.Info("DeleteException: deleting exception id=%d", id)

	if err := s.exceptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found", id)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for exception id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d", id)
	return nil
}

// Вспомогательные методы

// exceptionPeriod возвращает период выборки исключений,
// подставляя горизонт по умолчанию для неуказанных границ
func (s *Service) exceptionPeriod(from, to *time.Time) (time.Time, time.Time) {
	start := time.Now().Truncate(24 * time.Hour)
	if from != nil {
		start = *from
	}
	end := start.AddDate(0, 0, defaultExceptionHorizonDays)
	if to != nil {
		end = *to
	}
	return start, end
}

// checkServicesExist проверяет, что все услуги из диапазонов есть в каталоге агенды
func (s *Service) checkServicesExist(ctx context.Context, agendaID int64, ranges []domain.ServiceHourRange) error {
	catalog, err := s.catalogRepo.ListByAgenda(ctx, agendaID)
	if err != nil {
		s.logger.Error("checkServicesExist: failed to list services for agenda=%d: %v", agendaID, err)
		return fmt.Errorf("%w: checkServicesExist - failed to list services: %v", ErrInternal, err)
	}

	known := make(map[int64]struct{}, len(catalog))
	for _, svc := range catalog {
		known[svc.ID] = struct{}{}
	}

	for i := range ranges {
		if _, ok := known[ranges[i].ServiceID]; !ok {
			s.logger.Warn("checkServicesExist: service id=%d not found in agenda=%d", ranges[i].ServiceID, agendaID)
			return ErrServiceNotFound
		}
	}

	return nil
}
