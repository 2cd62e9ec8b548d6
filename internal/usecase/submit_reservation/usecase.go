package submit_reservation

import (
	"context"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/internal/integrations/garageservice"
	"github.com/m04kA/SMC-IntakeGateway/pkg/ptr"
)

// UseCase use case отправки черновика записи во внешний API
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

// Execute выполняет отправку черновика.
// Внешний API - единственный источник истины об успехе: клиентская
// валидация лишь отсекает заведомо невалидные черновики до сети.
// Отказ внешнего API возвращается как *garageservice.RejectionError
// с дословным текстом причины.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		return nil, err
	}

	draft := req.Draft
	uc.logger.Info("SubmitReservation: user=%d, date=%s, serviceType=%s, custom=%t",
		req.UserID, draft.Date.Format(domain.DateFormat), draft.EffectiveServiceType(), draft.UseCustomDescription)

	// 2. Проверяем инварианты черновика
	now := uc.timeProvider.Now()
	if err := validateDraft(draft, now); err != nil {
		uc.logger.Warn("SubmitReservation: draft validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	// 3. Сериализуем черновик в запрос внешнего API
	apiReq := toAPIRequest(draft)

	// 4. Создаем запись. Вызов атомарен: частичного успеха не бывает
	reservation, err := uc.client.CreateReservation(ctx, req.UserID, apiReq)
	if err != nil {
		uc.logger.Warn("SubmitReservation: upstream rejected or failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	uc.logger.Info("SubmitReservation: created reservation id=%d for user=%d", reservation.ID, req.UserID)

	return &Response{Reservation: reservation}, nil
}

// toAPIRequest сериализует черновик в тело запроса POST /reservations.
// В режиме свободного описания слот и симптомы не отправляются, текст
// уходит в otherSymptomDescription.
func toAPIRequest(draft *domain.ReservationDraft) *garageservice.CreateReservationRequest {
	apiReq := &garageservice.CreateReservationRequest{
		Date:        draft.Date.Format(domain.DateFormat),
		Description: draft.Description,
		VehicleID:   *draft.VehicleID,
		SymptomIDs:  []int64{},
	}

	if draft.UseCustomDescription {
		apiReq.OtherSymptomDescription = ptr.Ptr(draft.Description)
		return apiReq
	}

	apiReq.Time = ptr.Ptr(draft.Time.String())
	apiReq.SymptomIDs = append(apiReq.SymptomIDs, draft.SymptomIDs...)
	return apiReq
}
