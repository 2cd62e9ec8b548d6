package domain

import (
	"time"

	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// DraftState represents the state of the intake form
type DraftState string

const (
	StateEditing    DraftState = "editing"
	StateSubmitting DraftState = "submitting"
	StateSucceeded  DraftState = "succeeded"
	StateFailed     DraftState = "failed"
)

// CanEdit returns true if the draft may still be mutated.
func (s DraftState) CanEdit() bool {
	return s == StateEditing || s == StateFailed
}

// CanSubmit returns true if a submission may be started from this state.
func (s DraftState) CanSubmit() bool {
	return s == StateEditing || s == StateFailed
}

// ReservationDraft is the in-memory, not-yet-submitted reservation being
// composed by the user. It exists only for the lifetime of an intake
// session and is handed to the external API on submission.
type ReservationDraft struct {
	VehicleID            *int64
	SymptomIDs           []int64
	UseCustomDescription bool
	Description          string
	ServiceType          ServiceType // derived, never set independently
	Date                 time.Time   // zero = not chosen yet
	Time                 types.TimeString
}

// NewReservationDraft returns an empty draft in regular service mode.
func NewReservationDraft() *ReservationDraft {
	return &ReservationDraft{
		SymptomIDs:  []int64{},
		ServiceType: ServiceTypeRegular,
	}
}

// HasVehicle returns true if a vehicle has been chosen.
func (d *ReservationDraft) HasVehicle() bool {
	return d.VehicleID != nil
}

// HasDate returns true if a reservation date has been chosen.
func (d *ReservationDraft) HasDate() bool {
	return !d.Date.IsZero()
}

// HasSymptom returns true if the symptom is currently selected.
func (d *ReservationDraft) HasSymptom(symptomID int64) bool {
	for _, id := range d.SymptomIDs {
		if id == symptomID {
			return true
		}
	}
	return false
}

// ToggleSymptom добавляет симптом в выборку или убирает его, если он уже
// выбран. Возвращает true, если симптом был добавлен. Пересчет
// ServiceType - обязанность вызывающего (см. RecomputeServiceType),
// он должен выполняться синхронно до любого перезапроса слотов.
func (d *ReservationDraft) ToggleSymptom(symptomID int64) bool {
	for i, id := range d.SymptomIDs {
		if id == symptomID {
			d.SymptomIDs = append(d.SymptomIDs[:i], d.SymptomIDs[i+1:]...)
			return false
		}
	}
	d.SymptomIDs = append(d.SymptomIDs, symptomID)
	return true
}

// RecomputeServiceType recalculates the derived service type from the
// currently selected symptoms.
func (d *ReservationDraft) RecomputeServiceType(catalog map[int64]Symptom) {
	selected := make([]Symptom, 0, len(d.SymptomIDs))
	for _, id := range d.SymptomIDs {
		if s, ok := catalog[id]; ok {
			selected = append(selected, s)
		}
	}
	d.ServiceType = DeriveServiceType(selected)
}

// SetCustomDescription toggles custom-description mode. Enabling it
// clears the symptom selection and the chosen time (slots no longer
// apply); disabling it restores nothing - selections must be re-chosen.
func (d *ReservationDraft) SetCustomDescription(enabled bool) {
	d.UseCustomDescription = enabled
	if enabled {
		d.SymptomIDs = []int64{}
		d.Time = ""
		d.ServiceType = ServiceTypeRegular
	}
}

// SetDate sets the reservation date and clears a previously chosen time:
// слот, выбранный для другой даты, никогда не должен быть отправлен.
func (d *ReservationDraft) SetDate(date time.Time) {
	d.Date = date
	d.Time = ""
}

// EffectiveServiceType returns the service type used for slot rules.
// In custom-description mode it is always regular - поведение внешнего
// API, продублированное как есть.
func (d *ReservationDraft) EffectiveServiceType() ServiceType {
	if d.UseCustomDescription {
		return ServiceTypeRegular
	}
	return d.ServiceType
}

// NeedsSlot returns true if the draft requires a time slot before it can
// be submitted (custom-description reservations are scheduled by staff).
func (d *ReservationDraft) NeedsSlot() bool {
	return !d.UseCustomDescription
}
