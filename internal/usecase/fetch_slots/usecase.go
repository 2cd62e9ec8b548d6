package fetch_slots

import (
	"context"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// UseCase use case получения доступных слотов для даты и типа сервиса
type UseCase struct {
	client       GarageServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client GarageServiceClient, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет запрос доступных слотов.
// Ответ внешнего API авторитетен: пустой список - валидный результат
// "все занято". Ошибка сети или сервера логируется и деградирует до
// пустого списка с флагом Degraded: доступность формы важнее строгого
// проброса ошибки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FetchSlots: user=%d, date=%s, serviceType=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.ServiceType)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("FetchSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Запрашиваем слоты у внешнего API
	slots, err := uc.client.GetAvailableSlots(ctx, req.Date, req.ServiceType)
	if err != nil {
		// Fail open: пользователь видит "нет доступных слотов" вместо ошибки
		uc.logger.Error("FetchSlots: upstream failed for date=%s, serviceType=%s: %v",
			req.Date.Format(domain.DateFormat), req.ServiceType, err)
		return &Response{
			Date:        req.Date,
			ServiceType: req.ServiceType,
			Slots:       []types.TimeString{},
			Degraded:    true,
		}, nil
	}

	uc.logger.Info("FetchSlots: got %d slots for date=%s, serviceType=%s",
		len(slots), req.Date.Format(domain.DateFormat), req.ServiceType)

	return &Response{
		Date:        req.Date,
		ServiceType: req.ServiceType,
		Slots:       slots,
	}, nil
}
