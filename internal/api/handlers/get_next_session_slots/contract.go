package get_next_session_slots

import (
	"context"

	getNextSessionSlots "github.com/dsalazarv/MCS-AgendaService/internal/usecase/get_next_session_slots"
)

type GetNextSessionSlotsUseCase interface {
	Execute(ctx context.Context, req *getNextSessionSlots.Request) (*getNextSessionSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
