package load_catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

// UseCase use case загрузки каталога симптомов и мотоциклов пользователя
type UseCase struct {
	client GarageServiceClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client GarageServiceClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет загрузку каталога.
// Оба запроса выполняются конкурентно и независимы: порядок завершения
// не гарантируется, отказ одного не отменяет другой. Ошибка запроса
// деградирует до пустого списка с флагом недоступности - форма остается
// рабочей при частичном отказе внешнего API.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	uc.logger.Info("LoadCatalog: loading symptoms and vehicles for user=%d", req.UserID)

	var (
		wg       sync.WaitGroup
		symptoms []domain.Symptom
		vehicles []domain.Vehicle
		symErr   error
		vehErr   error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		symptoms, symErr = uc.client.ListSymptoms(ctx)
	}()

	go func() {
		defer wg.Done()
		vehicles, vehErr = uc.client.ListUserVehicles(ctx, req.UserID)
	}()

	wg.Wait()

	resp := &Response{
		Symptoms: symptoms,
		Vehicles: vehicles,
	}

	if symErr != nil {
		uc.logger.Error("LoadCatalog: failed to load symptoms for user=%d: %v", req.UserID, symErr)
		resp.Symptoms = []domain.Symptom{}
		resp.SymptomsUnavailable = true
	}

	if vehErr != nil {
		uc.logger.Error("LoadCatalog: failed to load vehicles for user=%d: %v", req.UserID, vehErr)
		resp.Vehicles = []domain.Vehicle{}
		resp.VehiclesUnavailable = true
	}

	// Предвыбираем первый мотоцикл, если список непустой
	if len(resp.Vehicles) > 0 {
		resp.DefaultVehicleID = &resp.Vehicles[0].ID
	}

	uc.logger.Info("LoadCatalog: loaded %d symptoms, %d vehicles for user=%d",
		len(resp.Symptoms), len(resp.Vehicles), req.UserID)

	return resp, nil
}
