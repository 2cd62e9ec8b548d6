package submit_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeGateway/internal/domain"
	"github.com/m04kA/SMC-IntakeGateway/internal/integrations/garageservice"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake"
	submitUC "github.com/m04kA/SMC-IntakeGateway/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-IntakeGateway/pkg/types"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	reservation *domain.Reservation
	err         error

	gotSessionID string
	gotUserID    int64
}

func (f *fakeService) Submit(ctx context.Context, sessionID string, userID int64) (*domain.Reservation, error) {
	f.gotSessionID = sessionID
	f.gotUserID = userID
	return f.reservation, f.err
}

func doRequest(t *testing.T, svc *fakeService) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, stubLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/intake/sessions/{sessionId}/submit", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/sessions/sess-1/submit", nil)
	req.Header.Set("X-User-ID", "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Handle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		slot := types.TimeString("13:00")
		svc := &fakeService{
			reservation: &domain.Reservation{
				ID:          100,
				UserID:      7,
				VehicleID:   10,
				Date:        time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
				Time:        &slot,
				ServiceType: domain.ServiceTypeMajor,
				SymptomIDs:  []int64{1},
				Status:      domain.StatusPending,
			},
		}

		w := doRequest(t, svc)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "sess-1", svc.gotSessionID)
		assert.Equal(t, int64(7), svc.gotUserID)

		var view map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, float64(100), view["id"])
		assert.Equal(t, "2026-09-02", view["date"])
		assert.Equal(t, "13:00", view["time"])
		assert.Equal(t, "pending", view["status"])
	})

	t.Run("upstream rejection surfaces the verbatim reason", func(t *testing.T) {
		svc := &fakeService{err: &garageservice.RejectionError{Message: "Выбранный слот уже занят"}}

		w := doRequest(t, svc)

		require.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Выбранный слот уже занят", resp["error"])
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"session not found", intake.ErrSessionNotFound, http.StatusNotFound},
			{"access denied", intake.ErrAccessDenied, http.StatusForbidden},
			{"in flight", intake.ErrSubmissionInFlight, http.StatusConflict},
			{"already succeeded", intake.ErrAlreadySucceeded, http.StatusConflict},
			{"not ready", intake.ErrNotReady, http.StatusBadRequest},
			{"no vehicle", submitUC.ErrNoVehicle, http.StatusBadRequest},
			{"no date", submitUC.ErrNoDate, http.StatusBadRequest},
			{"date too soon", submitUC.ErrDateTooSoon, http.StatusBadRequest},
			{"no time", submitUC.ErrNoTime, http.StatusBadRequest},
			{"major time not allowed", submitUC.ErrMajorTimeNotAllowed, http.StatusBadRequest},
			{"empty description", submitUC.ErrEmptyDescription, http.StatusBadRequest},
			{"description too long", submitUC.ErrDescriptionTooLong, http.StatusBadRequest},
			{"upstream internal", garageservice.ErrInternal, http.StatusBadGateway},
			{"upstream invalid response", garageservice.ErrInvalidResponse, http.StatusBadGateway},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := doRequest(t, &fakeService{err: tc.err})
				assert.Equal(t, tc.code, w.Code)
			})
		}
	})
}
