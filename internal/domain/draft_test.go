package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeGateway/pkg/ptr"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

var testCatalog = map[int64]Symptom{
	1: {ID: 1, Name: "Не заводится", ServiceType: ServiceTypeMajor},
	2: {ID: 2, Name: "Скрипят тормоза", ServiceType: ServiceTypeRegular},
	3: {ID: 3, Name: "Плановое ТО", ServiceType: ServiceTypeRegular},
}

func TestNewReservationDraft(t *testing.T) {
	d := NewReservationDraft()

	assert.Nil(t, d.VehicleID)
	assert.Empty(t, d.SymptomIDs)
	assert.NotNil(t, d.SymptomIDs)
	assert.False(t, d.UseCustomDescription)
	assert.Equal(t, ServiceTypeRegular, d.ServiceType)
	assert.False(t, d.HasDate())
	assert.True(t, d.Time.IsZero())
}

func TestReservationDraft_ToggleSymptom(t *testing.T) {
	t.Run("add then remove", func(t *testing.T) {
		d := NewReservationDraft()

		added := d.ToggleSymptom(2)
		assert.True(t, added)
		assert.True(t, d.HasSymptom(2))

		added = d.ToggleSymptom(2)
		assert.False(t, added)
		assert.False(t, d.HasSymptom(2))
		assert.Empty(t, d.SymptomIDs)
	})

	t.Run("preserves other selections", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(1)
		d.ToggleSymptom(2)
		d.ToggleSymptom(3)

		d.ToggleSymptom(2)

		assert.Equal(t, []int64{1, 3}, d.SymptomIDs)
	})
}

func TestReservationDraft_RecomputeServiceType(t *testing.T) {
	t.Run("empty selection is regular", func(t *testing.T) {
		d := NewReservationDraft()
		d.RecomputeServiceType(testCatalog)
		assert.Equal(t, ServiceTypeRegular, d.ServiceType)
	})

	t.Run("only regular symptoms", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(2)
		d.ToggleSymptom(3)
		d.RecomputeServiceType(testCatalog)
		assert.Equal(t, ServiceTypeRegular, d.ServiceType)
	})

	t.Run("one major symptom makes the whole draft major", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(2)
		d.ToggleSymptom(1)
		d.RecomputeServiceType(testCatalog)
		assert.Equal(t, ServiceTypeMajor, d.ServiceType)
	})

	t.Run("deselecting the major symptom reverts to regular", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(1)
		d.RecomputeServiceType(testCatalog)
		require.Equal(t, ServiceTypeMajor, d.ServiceType)

		d.ToggleSymptom(1)
		d.RecomputeServiceType(testCatalog)
		assert.Equal(t, ServiceTypeRegular, d.ServiceType)
	})

	t.Run("unknown symptom ids are ignored", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(999)
		d.RecomputeServiceType(testCatalog)
		assert.Equal(t, ServiceTypeRegular, d.ServiceType)
	})
}

func TestReservationDraft_SetCustomDescription(t *testing.T) {
	t.Run("enabling clears symptoms and time", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(1)
		d.RecomputeServiceType(testCatalog)
		d.Time = types.TimeString("13:00")

		d.SetCustomDescription(true)

		assert.True(t, d.UseCustomDescription)
		assert.Empty(t, d.SymptomIDs)
		assert.True(t, d.Time.IsZero())
		assert.Equal(t, ServiceTypeRegular, d.ServiceType)
	})

	t.Run("disabling does not restore anything", func(t *testing.T) {
		d := NewReservationDraft()
		d.ToggleSymptom(1)
		d.SetCustomDescription(true)
		d.SetCustomDescription(false)

		assert.False(t, d.UseCustomDescription)
		assert.Empty(t, d.SymptomIDs)
	})

	t.Run("custom mode does not need a slot", func(t *testing.T) {
		d := NewReservationDraft()
		assert.True(t, d.NeedsSlot())
		d.SetCustomDescription(true)
		assert.False(t, d.NeedsSlot())
	})
}

func TestReservationDraft_SetDate(t *testing.T) {
	d := NewReservationDraft()
	d.Time = types.TimeString("15:00")

	d.SetDate(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))

	assert.True(t, d.HasDate())
	assert.True(t, d.Time.IsZero(), "chosen time must be cleared when the date changes")
}

func TestReservationDraft_EffectiveServiceType(t *testing.T) {
	d := NewReservationDraft()
	d.ToggleSymptom(1)
	d.RecomputeServiceType(testCatalog)
	require.Equal(t, ServiceTypeMajor, d.ServiceType)

	assert.Equal(t, ServiceTypeMajor, d.EffectiveServiceType())

	d.UseCustomDescription = true
	assert.Equal(t, ServiceTypeRegular, d.EffectiveServiceType())
}

func TestReservationDraft_HasVehicle(t *testing.T) {
	d := NewReservationDraft()
	assert.False(t, d.HasVehicle())
	d.VehicleID = ptr.Ptr(int64(42))
	assert.True(t, d.HasVehicle())
}

func TestDraftState(t *testing.T) {
	assert.True(t, StateEditing.CanEdit())
	assert.True(t, StateFailed.CanEdit())
	assert.False(t, StateSubmitting.CanEdit())
	assert.False(t, StateSucceeded.CanEdit())

	assert.True(t, StateEditing.CanSubmit())
	assert.True(t, StateFailed.CanSubmit())
	assert.False(t, StateSubmitting.CanSubmit())
	assert.False(t, StateSucceeded.CanSubmit())
}
