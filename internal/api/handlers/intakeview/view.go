package intakeview

import (
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
)

// SessionView HTTP-представление intake-сессии: черновик, каталог,
// слоты и вердикт готовности к отправке. Общая модель ответа для
// start/get/update хендлеров.
type SessionView struct {
	SessionID string    `json:"sessionId"`
	State     string    `json:"state"`
	Draft     DraftView `json:"draft"`

	Symptoms            []SymptomView `json:"symptoms"`
	Vehicles            []VehicleView `json:"vehicles"`
	SymptomsUnavailable bool          `json:"symptomsUnavailable,omitempty"`
	VehiclesUnavailable bool          `json:"vehiclesUnavailable,omitempty"`

	Slots         []string `json:"slots"`
	SlotsPending  bool     `json:"slotsPending,omitempty"`
	SlotsDegraded bool     `json:"slotsDegraded,omitempty"`

	CanSubmit           bool   `json:"canSubmit"`
	SubmitBlockedReason string `json:"submitBlockedReason,omitempty"`

	LastError string `json:"lastError,omitempty"`
}

// DraftView HTTP-представление черновика
type DraftView struct {
	VehicleID            *int64  `json:"vehicleId"`
	SymptomIDs           []int64 `json:"symptomIds"`
	UseCustomDescription bool    `json:"useCustomDescription"`
	Description          string  `json:"description"`
	ServiceType          string  `json:"serviceType"`
	Date                 string  `json:"date,omitempty"` // YYYY-MM-DD
	Time                 string  `json:"time,omitempty"` // HH:MM
}

// SymptomView HTTP-представление симптома каталога
type SymptomView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"serviceType"`
}

// VehicleView HTTP-представление мотоцикла
type VehicleView struct {
	ID             int64  `json:"id"`
	Brand          string `json:"brand"`
	Type           string `json:"type"`
	ProductionYear int    `json:"productionYear"`
}

// FromSession строит представление сессии. Снимок делается под
// блокировкой сессии: параллельный перезапрос слотов не должен
// порвать согласованность ответа.
func FromSession(s *models.Session, now time.Time) *SessionView {
	s.Lock()
	defer s.Unlock()

	draft := DraftView{
		VehicleID:            s.Draft.VehicleID,
		SymptomIDs:           append([]int64{}, s.Draft.SymptomIDs...),
		UseCustomDescription: s.Draft.UseCustomDescription,
		Description:          s.Draft.Description,
		ServiceType:          string(s.Draft.EffectiveServiceType()),
		Time:                 s.Draft.Time.String(),
	}
	if s.Draft.HasDate() {
		draft.Date = s.Draft.Date.Format(domain.DateFormat)
	}

	symptoms := make([]SymptomView, 0, len(s.Symptoms))
	for _, sym := range s.Symptoms {
		symptoms = append(symptoms, SymptomView{
			ID:          sym.ID,
			Name:        sym.Name,
			ServiceType: string(sym.ServiceType),
		})
	}

	vehicles := make([]VehicleView, 0, len(s.Vehicles))
	for _, v := range s.Vehicles {
		vehicles = append(vehicles, VehicleView{
			ID:             v.ID,
			Brand:          v.Brand,
			Type:           v.Type,
			ProductionYear: v.ProductionYear,
		})
	}

	slots := make([]string, 0, len(s.Slots))
	for _, slot := range s.Slots {
		slots = append(slots, slot.String())
	}

	canSubmit, reason := s.ReadyToSubmit(now)

	return &SessionView{
		SessionID:           s.ID,
		State:               string(s.State),
		Draft:               draft,
		Symptoms:            symptoms,
		Vehicles:            vehicles,
		SymptomsUnavailable: s.SymptomsUnavailable,
		VehiclesUnavailable: s.VehiclesUnavailable,
		Slots:               slots,
		SlotsPending:        s.SlotsPending,
		SlotsDegraded:       s.SlotsDegraded,
		CanSubmit:           canSubmit && s.State.CanSubmit(),
		SubmitBlockedReason: reason,
		LastError:           s.LastError,
	}
}

// ReservationView HTTP-представление записи на сервис
type ReservationView struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	VehicleID   int64   `json:"vehicleId"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	ServiceType string  `json:"serviceType"`
	SymptomIDs  []int64 `json:"symptomIds"`
	Description string  `json:"description"`
	Status      string  `json:"status"`

	// Active запись еще в работе; Scheduled слот подтвержден (запись без
	// слота ждет назначения времени персоналом)
	Active    bool `json:"active"`
	Scheduled bool `json:"scheduled"`

	VehicleBrand *string `json:"vehicleBrand,omitempty"`
	VehicleType  *string `json:"vehicleType,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromReservation строит представление записи
func FromReservation(r *domain.Reservation) *ReservationView {
	view := &ReservationView{
		ID:           r.ID,
		UserID:       r.UserID,
		VehicleID:    r.VehicleID,
		Date:         r.Date.Format(domain.DateFormat),
		ServiceType:  string(r.ServiceType),
		SymptomIDs:   append([]int64{}, r.SymptomIDs...),
		Description:  r.Description,
		Status:       string(r.Status),
		Active:       r.IsActive(),
		Scheduled:    r.IsScheduled(),
		VehicleBrand: r.VehicleBrand,
		VehicleType:  r.VehicleType,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
	if r.IsScheduled() {
		t := r.Time.String()
		view.Time = &t
	}
	return view
}
