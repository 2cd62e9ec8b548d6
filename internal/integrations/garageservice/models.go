package garageservice

import (
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// Symptom модель симптома из каталога внешнего API
type Symptom struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"` // regular | major
}

// ToDomain конвертирует симптом в доменную модель
func (s *Symptom) ToDomain() domain.Symptom {
	return domain.Symptom{
		ID:          s.ID,
		Name:        s.Name,
		ServiceType: domain.ServiceType(s.ServiceType),
	}
}

// symptomsEnvelope конверт ответа GET /symptoms
type symptomsEnvelope struct {
	Data []Symptom `json:"data"`
}

// Vehicle модель мотоцикла пользователя из внешнего API
type Vehicle struct {
	ID             int64  `json:"id"`
	Brand          string `json:"brand"`
	Type           string `json:"type"`
	ProductionYear int    `json:"productionYear"`
}

// ToDomain конвертирует мотоцикл в доменную модель
func (v *Vehicle) ToDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:             v.ID,
		Brand:          v.Brand,
		Type:           v.Type,
		ProductionYear: v.ProductionYear,
	}
}

// CreateReservationRequest тело запроса POST /reservations.
// Форма тела продублирована с внешнего API и должна с ним совпадать.
type CreateReservationRequest struct {
	Date                    string  `json:"date"` // YYYY-MM-DD
	Time                    *string `json:"time"` // HH:MM, null для записи без слота
	SymptomIDs              []int64 `json:"symptomIds"`
	Description             string  `json:"description"`
	VehicleID               int64   `json:"vehicleId"`
	OtherSymptomDescription *string `json:"otherSymptomDescription"`
}

// Reservation модель записи на сервис из внешнего API
type Reservation struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	VehicleID   int64   `json:"vehicleId"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	ServiceType string  `json:"serviceType"`
	SymptomIDs  []int64 `json:"symptomIds"`
	Description string  `json:"description"`
	Status      string  `json:"status"`

	VehicleBrand *string `json:"vehicleBrand,omitempty"`
	VehicleType  *string `json:"vehicleType,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToDomain конвертирует запись в доменную модель
func (r *Reservation) ToDomain() (*domain.Reservation, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var slot *types.TimeString
	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		slot = &t
	}

	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, r.UpdatedAt)

	return &domain.Reservation{
		ID:           r.ID,
		UserID:       r.UserID,
		VehicleID:    r.VehicleID,
		Date:         date,
		Time:         slot,
		ServiceType:  domain.ServiceType(r.ServiceType),
		SymptomIDs:   r.SymptomIDs,
		Description:  r.Description,
		Status:       domain.ReservationStatus(r.Status),
		VehicleBrand: r.VehicleBrand,
		VehicleType:  r.VehicleType,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// ErrorResponse модель ошибки внешнего API
type ErrorResponse struct {
	Error string `json:"error"`
}
