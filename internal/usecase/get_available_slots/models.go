package get_available_slots

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Request модель запроса на получение слотов услуги
type Request struct {
	AgendaID  int64     // ID агенды
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для подбора слотов (без времени)
}

// Response модель ответа со слотами на день
type Response struct {
	AgendaID        int64              // ID агенды
	ServiceID       int64              // ID услуги
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность слота в минутах
	Available       []types.TimeString // Свободные времена начала
	Full            []types.TimeString // Занятые времена начала (все места заняты)
	DayStatus       string             // Статус дня: available / blocked / full
	DayReason       string             // Причина статуса, когда день недоступен
}
