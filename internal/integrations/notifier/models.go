package notifier

// EventType тип события для шлюза уведомлений
type EventType string

const (
	EventAppointmentCreated   EventType = "appointment_created"
	EventAppointmentCancelled EventType = "appointment_cancelled"
)

// AppointmentEvent полезная нагрузка события о записи
// Шлюз сам подбирает активный шаблон SMS/email и подставляет поля
type AppointmentEvent struct {
	Event         EventType `json:"event"`
	AgendaID      int64     `json:"agendaId"`
	AppointmentID int64     `json:"appointmentId"`
	ServiceName   string    `json:"serviceName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	PatientName   string    `json:"patientName"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
