package intake

import (
	"context"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
	fetchSlots "github.com/m04kA/SMC-IntakeGateway/internal/usecase/fetch_slots"
	loadCatalog "github.com/m04kA/SMC-IntakeGateway/internal/usecase/load_catalog"
	submitReservation "github.com/m04kA/SMC-IntakeGateway/internal/usecase/submit_reservation"
)

// SessionStore интерфейс хранилища intake-сессий
type SessionStore interface {
	Create(userID int64) *models.Session
	Get(id string) (*models.Session, error)
	Delete(id string)
}

// LoadCatalogUseCase интерфейс use case загрузки каталога
type LoadCatalogUseCase interface {
	Execute(ctx context.Context, req *loadCatalog.Request) (*loadCatalog.Response, error)
}

// FetchSlotsUseCase интерфейс use case получения доступных слотов
type FetchSlotsUseCase interface {
	Execute(ctx context.Context, req *fetchSlots.Request) (*fetchSlots.Response, error)
}

// SubmitReservationUseCase интерфейс use case отправки черновика
type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, error)
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
