package load_catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type fakeClient struct {
	symptoms    []domain.Symptom
	symptomsErr error
	vehicles    []domain.Vehicle
	vehiclesErr error
}

func (f *fakeClient) ListSymptoms(ctx context.Context) ([]domain.Symptom, error) {
	return f.symptoms, f.symptomsErr
}

func (f *fakeClient) ListUserVehicles(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	return f.vehicles, f.vehiclesErr
}

func TestUseCase_Execute(t *testing.T) {
	symptoms := []domain.Symptom{
		{ID: 1, Name: "Не заводится", ServiceType: domain.ServiceTypeMajor},
		{ID: 2, Name: "Скрипят тормоза", ServiceType: domain.ServiceTypeRegular},
	}
	vehicles := []domain.Vehicle{
		{ID: 10, Brand: "Honda", Type: "CB650R", ProductionYear: 2022},
		{ID: 11, Brand: "Yamaha", Type: "MT-07", ProductionYear: 2020},
	}

	t.Run("both lists load", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{symptoms: symptoms, vehicles: vehicles}, stubLogger{})

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
		require.NoError(t, err)

		assert.Equal(t, symptoms, resp.Symptoms)
		assert.Equal(t, vehicles, resp.Vehicles)
		assert.False(t, resp.SymptomsUnavailable)
		assert.False(t, resp.VehiclesUnavailable)
		require.NotNil(t, resp.DefaultVehicleID)
		assert.Equal(t, int64(10), *resp.DefaultVehicleID)
	})

	t.Run("symptoms failure degrades only symptoms", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{
			symptomsErr: errors.New("upstream down"),
			vehicles:    vehicles,
		}, stubLogger{})

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
		require.NoError(t, err)

		assert.Empty(t, resp.Symptoms)
		assert.NotNil(t, resp.Symptoms)
		assert.True(t, resp.SymptomsUnavailable)
		assert.Equal(t, vehicles, resp.Vehicles)
		assert.False(t, resp.VehiclesUnavailable)
		require.NotNil(t, resp.DefaultVehicleID)
		assert.Equal(t, int64(10), *resp.DefaultVehicleID)
	})

	t.Run("vehicles failure degrades only vehicles", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{
			symptoms:    symptoms,
			vehiclesErr: errors.New("upstream down"),
		}, stubLogger{})

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
		require.NoError(t, err)

		assert.Equal(t, symptoms, resp.Symptoms)
		assert.Empty(t, resp.Vehicles)
		assert.True(t, resp.VehiclesUnavailable)
		assert.Nil(t, resp.DefaultVehicleID)
	})

	t.Run("both failures still return a usable response", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{
			symptomsErr: errors.New("down"),
			vehiclesErr: errors.New("down"),
		}, stubLogger{})

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
		require.NoError(t, err)

		assert.Empty(t, resp.Symptoms)
		assert.Empty(t, resp.Vehicles)
		assert.True(t, resp.SymptomsUnavailable)
		assert.True(t, resp.VehiclesUnavailable)
		assert.Nil(t, resp.DefaultVehicleID)
	})

	t.Run("no vehicles means no preselect", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{symptoms: symptoms, vehicles: []domain.Vehicle{}}, stubLogger{})

		resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
		require.NoError(t, err)
		assert.Nil(t, resp.DefaultVehicleID)
	})

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewUseCase(&fakeClient{}, stubLogger{})

		_, err := uc.Execute(context.Background(), &Request{UserID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
