package fetch_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeClient struct {
	slots []types.TimeString
	err   error

	gotDate        time.Time
	gotServiceType domain.ServiceType
}

func (f *fakeClient) GetAvailableSlots(ctx context.Context, date time.Time, serviceType domain.ServiceType) ([]types.TimeString, error) {
	f.gotDate = date
	f.gotServiceType = serviceType
	return f.slots, f.err
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(client *fakeClient) *UseCase {
	uc := NewUseCase(client, stubLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	t.Run("returns upstream slots", func(t *testing.T) {
		client := &fakeClient{slots: []types.TimeString{"09:00", "11:00", "13:00"}}
		uc := newTestUseCase(client)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			Date:        tomorrow,
			ServiceType: domain.ServiceTypeRegular,
		})
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"09:00", "11:00", "13:00"}, resp.Slots)
		assert.False(t, resp.Degraded)
		assert.Equal(t, tomorrow, client.gotDate)
		assert.Equal(t, domain.ServiceTypeRegular, client.gotServiceType)
	})

	t.Run("empty upstream list is a valid fully-booked answer", func(t *testing.T) {
		client := &fakeClient{slots: []types.TimeString{}}
		uc := newTestUseCase(client)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			Date:        tomorrow,
			ServiceType: domain.ServiceTypeMajor,
		})
		require.NoError(t, err)

		assert.Empty(t, resp.Slots)
		assert.False(t, resp.Degraded)
	})

	t.Run("upstream failure fails open to empty list", func(t *testing.T) {
		client := &fakeClient{err: errors.New("connection refused")}
		uc := newTestUseCase(client)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			Date:        tomorrow,
			ServiceType: domain.ServiceTypeRegular,
		})
		require.NoError(t, err, "upstream errors must not propagate")

		assert.Empty(t, resp.Slots)
		assert.NotNil(t, resp.Slots)
		assert.True(t, resp.Degraded)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := newTestUseCase(&fakeClient{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			ServiceType: domain.ServiceTypeRegular,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown service type", func(t *testing.T) {
		uc := newTestUseCase(&fakeClient{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			Date:        tomorrow,
			ServiceType: domain.ServiceType("premium"),
		})
		assert.ErrorIs(t, err, ErrInvalidServiceType)
	})

	t.Run("same-day date rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeClient{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			ServiceType: domain.ServiceTypeRegular,
		})
		assert.ErrorIs(t, err, ErrDateTooSoon)
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeClient{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:      1,
			Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			ServiceType: domain.ServiceTypeRegular,
		})
		assert.ErrorIs(t, err, ErrDateTooSoon)
	})
}
