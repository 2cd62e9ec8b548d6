package intakeview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
	"github.com/m04kA/SMC-IntakeGateway/pkg/ptr"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

var viewNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestFromSession(t *testing.T) {
	t.Run("fresh session is not submittable", func(t *testing.T) {
		s := models.NewSession("sess-1", 7, viewNow)

		view := FromSession(s, viewNow)

		assert.Equal(t, "sess-1", view.SessionID)
		assert.Equal(t, "editing", view.State)
		assert.False(t, view.CanSubmit)
		assert.NotEmpty(t, view.SubmitBlockedReason)
		assert.Empty(t, view.Draft.Date)
		assert.NotNil(t, view.Slots)
		assert.NotNil(t, view.Draft.SymptomIDs)
	})

	t.Run("complete draft is submittable", func(t *testing.T) {
		s := models.NewSession("sess-1", 7, viewNow)
		s.SetCatalog(
			[]domain.Symptom{{ID: 2, Name: "Скрипят тормоза", ServiceType: domain.ServiceTypeRegular}},
			[]domain.Vehicle{{ID: 10, Brand: "Honda", Type: "CB650R", ProductionYear: 2022}},
		)
		s.Draft.VehicleID = ptr.Ptr(int64(10))
		s.Draft.SymptomIDs = []int64{2}
		s.Draft.Date = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
		s.Draft.Time = types.TimeString("09:00")
		s.Slots = []types.TimeString{"09:00", "11:00"}

		view := FromSession(s, viewNow)

		assert.True(t, view.CanSubmit)
		assert.Empty(t, view.SubmitBlockedReason)
		assert.Equal(t, "2026-09-02", view.Draft.Date)
		assert.Equal(t, "09:00", view.Draft.Time)
		assert.Equal(t, []string{"09:00", "11:00"}, view.Slots)
		require.Len(t, view.Symptoms, 1)
		require.Len(t, view.Vehicles, 1)
	})

	t.Run("submitting state blocks the button", func(t *testing.T) {
		s := models.NewSession("sess-1", 7, viewNow)
		s.SetCatalog(nil, nil)
		s.Draft.VehicleID = ptr.Ptr(int64(10))
		s.Draft.Date = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
		s.Draft.Time = types.TimeString("09:00")
		s.State = domain.StateSubmitting

		view := FromSession(s, viewNow)
		assert.False(t, view.CanSubmit)
	})

	t.Run("custom mode reports regular service type", func(t *testing.T) {
		s := models.NewSession("sess-1", 7, viewNow)
		s.Draft.VehicleID = ptr.Ptr(int64(10))
		s.Draft.Date = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
		s.Draft.SetCustomDescription(true)
		s.Draft.Description = "Гремит и не едет"

		view := FromSession(s, viewNow)

		assert.True(t, view.CanSubmit)
		assert.True(t, view.Draft.UseCustomDescription)
		assert.Equal(t, "regular", view.Draft.ServiceType)
		assert.Empty(t, view.Draft.Time)
	})
}

func TestFromReservation(t *testing.T) {
	slot := types.TimeString("13:00")
	r := &domain.Reservation{
		ID:           100,
		UserID:       7,
		VehicleID:    10,
		Date:         time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		Time:         &slot,
		ServiceType:  domain.ServiceTypeMajor,
		SymptomIDs:   []int64{1},
		Description:  "Не заводится",
		Status:       domain.StatusPending,
		VehicleBrand: ptr.Ptr("Honda"),
		CreatedAt:    time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	view := FromReservation(r)

	assert.Equal(t, int64(100), view.ID)
	assert.Equal(t, "2026-09-02", view.Date)
	require.NotNil(t, view.Time)
	assert.Equal(t, "13:00", *view.Time)
	assert.Equal(t, "major", view.ServiceType)
	assert.Equal(t, "2026-09-01T12:00:00Z", view.CreatedAt)
	assert.True(t, view.Active)
	assert.True(t, view.Scheduled)

	t.Run("unscheduled reservation has null time", func(t *testing.T) {
		r.Time = nil
		view := FromReservation(r)
		assert.Nil(t, view.Time)
		assert.False(t, view.Scheduled)
	})

	t.Run("terminal statuses are not active", func(t *testing.T) {
		for _, status := range []domain.ReservationStatus{domain.StatusCompleted, domain.StatusCancelled} {
			r.Status = status
			view := FromReservation(r)
			assert.False(t, view.Active, string(status))
		}
	})
}
