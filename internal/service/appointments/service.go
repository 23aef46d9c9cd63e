package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsalazarv/MCS-AgendaService/internal/availability"
	"github.com/dsalazarv/MCS-AgendaService/internal/domain"
	apptRepo "github.com/dsalazarv/MCS-AgendaService/internal/infra/storage/appointment"
	"github.com/dsalazarv/MCS-AgendaService/internal/integrations/notifier"
	"github.com/dsalazarv/MCS-AgendaService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	apptRepo       AppointmentRepository
	notifierClient NotifierClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	notifierClient NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:       apptRepo,
		notifierClient: notifierClient,
		logger:         logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetAgendaAppointments получает записи агенды с гибкой фильтрацией
// Поддерживает фильтрацию по услуге, периоду, статусу и включению отменённых записей
//
// Примеры использования:
// - Все активные записи: GetAgendaAppointments(ctx, &GetAgendaAppointmentsRequest{AgendaID: 123})
// - Записи по услуге: указать ServiceName
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetAgendaAppointments(ctx context.Context, req *models.GetAgendaAppointmentsRequest) (*models.AppointmentListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetAgendaAppointments: fetching appointments for agenda=%d", req.AgendaID)
	if req.ServiceName != nil {
		logMsg += fmt.Sprintf(", service=%s", *req.ServiceName)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAgendaAppointments: invalid filter for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.GetByAgendaWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAgendaAppointments: repository error for agenda=%d: %v", req.AgendaID, err)
		return nil, fmt.Errorf("%w: GetAgendaAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAgendaAppointments: successfully fetched %d appointments for agenda=%d", len(appointments), req.AgendaID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetPackageHistory возвращает все сеансы пакета, к которому относится запись
// Сеансы сопоставляются по услуге и пациенту: по документу, а при его
// отсутствии по полному имени
func (s *Service) GetPackageHistory(ctx context.Context, appointmentID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetPackageHistory: fetching package sessions for appointment id=%d", appointmentID)

	ref, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetPackageHistory: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetPackageHistory: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetPackageHistory - repository error: %v", ErrInternal, err)
	}

	candidates, err := s.apptRepo.GetByPatient(ctx, ref.AgendaID, ref.ServiceName, ref.Document, ref.PatientName)
	if err != nil {
		s.logger.Error("GetPackageHistory: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetPackageHistory - repository error: %v", ErrInternal, err)
	}

	flat := make([]domain.Appointment, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate != nil {
			flat = append(flat, *candidate)
		}
	}
	sessions := availability.PackageHistory(flat, ref)

	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, len(sessions)),
	}
	for i := range sessions {
		resp.Appointments[i] = *models.FromDomainAppointment(&sessions[i])
	}

	s.logger.Info("GetPackageHistory: found %d sessions for appointment id=%d", len(sessions), appointmentID)
	return resp, nil
}

// Cancel отменяет запись
// После отмены отправляет уведомление через шлюз: его недоступность
// не откатывает отмену
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", appointmentID)

	// Получаем запись
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	// Отменяем запись
	if err := s.apptRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Уведомляем пациента об отмене
	event := notifier.AppointmentEvent{
		Event:         notifier.EventAppointmentCancelled,
		AgendaID:      appt.AgendaID,
		AppointmentID: appt.ID,
		ServiceName:   appt.ServiceName,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		PatientName:   appt.PatientName,
		Phone:         appt.Phone,
		Email:         appt.Email,
	}
	if err := s.notifierClient.NotifyWithGracefulDegradation(ctx, event); err != nil {
		// Graceful degradation: отмена уже состоялась
		s.logger.Warn("Cancel: notification skipped for appointment id=%d: %v", appointmentID, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус записи
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", appointmentID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Отмена идёт через Cancel: там проверяется статус и пишется причина
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested via status update for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: use cancel operation to cancel an appointment", ErrInvalidInput)
	}

	// Обновляем статус
	if err := s.apptRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}
