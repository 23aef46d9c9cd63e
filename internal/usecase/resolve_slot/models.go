package resolve_slot

import (
	"time"

	"github.com/dsalazarv/MCS-AgendaService/pkg/types"
)

// Request модель запроса на проверку конкретного слота
type Request struct {
	AgendaID  int64            // ID агенды
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата слота (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с вердиктом по слоту
type Response struct {
	AgendaID        int64            // ID агенды
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата слота
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность слота в минутах
	Outcome         string           // available / blocked / full
	Reason          string           // Причина отрицательного вердикта
}
