package update_draft

import (
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// UpdateDraftRequest HTTP request model.
// Каждое поле опционально: nil = не менять.
type UpdateDraftRequest struct {
	SelectVehicleID      *int64  `json:"selectVehicleId"`
	ToggleSymptomID      *int64  `json:"toggleSymptomId"`
	UseCustomDescription *bool   `json:"useCustomDescription"`
	Description          *string `json:"description"`
	Date                 *string `json:"date"` // "2025-10-15"
	Time                 *string `json:"time"` // "13:00"
}

// ToDraftChanges конвертирует HTTP запрос в модель изменений
// (с парсингом даты и времени)
func (r *UpdateDraftRequest) ToDraftChanges() (*models.DraftChanges, error) {
	changes := &models.DraftChanges{
		SelectVehicleID:      r.SelectVehicleID,
		ToggleSymptomID:      r.ToggleSymptomID,
		UseCustomDescription: r.UseCustomDescription,
		Description:          r.Description,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		changes.Date = &date
	}

	if r.Time != nil {
		slot, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		changes.Time = &slot
	}

	return changes, nil
}
