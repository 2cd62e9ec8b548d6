package domain

import (
	"time"

	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

// ReservationStatus represents the status of a reservation as reported
// by the external API. Status transitions are owned upstream; the
// gateway only displays them.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Reservation is a reservation already accepted by the external API.
type Reservation struct {
	ID          int64
	UserID      int64
	VehicleID   int64
	Date        time.Time
	Time        *types.TimeString // nil for custom-description reservations awaiting staff scheduling
	ServiceType ServiceType
	SymptomIDs  []int64
	Description string
	Status      ReservationStatus

	// Denormalized vehicle data for history display
	VehicleBrand *string
	VehicleType  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation is in an active state.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusCompleted
}

// IsScheduled returns true if the reservation has a confirmed time slot.
func (r *Reservation) IsScheduled() bool {
	return r.Time != nil && !r.Time.IsZero()
}
