package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

// ReservationsProvider интерфейс источника истории записей пользователя
type ReservationsProvider interface {
	ListUserReservations(ctx context.Context, userID int64) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
