package get_next_session_slots

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Request модель запроса слотов для следующего сеанса пакета
type Request struct {
	AppointmentID int64     // ID предыдущего сеанса пакета
	Date          time.Time // Дата для подбора слотов (без времени)
}

// Response модель ответа со слотами и планом следующего сеанса
type Response struct {
	AgendaID        int64     // ID агенды
	ServiceID       int64     // ID услуги
	ServiceName     string    // Название услуги (та же, что у предыдущего сеанса)
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Длительность слота в минутах

	SessionNumber int // Номер следующего сеанса
	TotalSessions int // Всего сеансов в пакете

	Available []types.TimeString // Свободные времена начала
	Full      []types.TimeString // Занятые времена начала
	DayStatus string             // Статус дня: available / blocked / full
	DayReason string             // Причина статуса, когда день недоступен
}
