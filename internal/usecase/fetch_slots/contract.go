package fetch_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// GarageServiceClient интерфейс клиента внешнего API записи на сервис
type GarageServiceClient interface {
	GetAvailableSlots(ctx context.Context, date time.Time, serviceType domain.ServiceType) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
