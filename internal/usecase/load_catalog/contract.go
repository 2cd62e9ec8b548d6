package load_catalog

import (
	"context"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

// GarageServiceClient интерфейс клиента внешнего API записи на сервис
type GarageServiceClient interface {
	ListSymptoms(ctx context.Context) ([]domain.Symptom, error)
	ListUserVehicles(ctx context.Context, userID int64) ([]domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
