package create_appointment

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	AgendaID  int64            // ID агенды
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")

	// Данные пациента
	PatientName string  // Полное имя пациента
	Document    *string // Документ пациента (опционально)
	Phone       *string // Телефон (опционально)
	Email       *string // Email (опционально)
	Notes       *string // Заметки (опционально)

	// Номер сеанса внутри пакета; 0 означает первый сеанс
	SessionNumber int
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	AgendaID        int64            // ID агенды
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги (денормализовано)
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	PatientName string  // Полное имя пациента
	Document    *string // Документ
	Phone       *string // Телефон
	Email       *string // Email
	Notes       *string // Заметки

	SessionNumber int // Номер сеанса внутри пакета
	TotalSessions int // Всего сеансов в пакете

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
