package submit_reservation

import (
	"context"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

type IntakeService interface {
	Submit(ctx context.Context, sessionID string, userID int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
