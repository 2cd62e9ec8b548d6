package update_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake/models"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	session *models.Session
	err     error

	gotSessionID string
	gotUserID    int64
	gotChanges   *models.DraftChanges
}

func (f *fakeService) ApplyChanges(ctx context.Context, sessionID string, userID int64, changes *models.DraftChanges) (*models.Session, error) {
	f.gotSessionID = sessionID
	f.gotUserID = userID
	f.gotChanges = changes
	return f.session, f.err
}

func doRequest(t *testing.T, svc *fakeService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, stubLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/intake/sessions/{sessionId}", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/intake/sessions/sess-1", strings.NewReader(body))
	req.Header.Set("X-User-ID", "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Handle(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("applies parsed changes", func(t *testing.T) {
		svc := &fakeService{session: models.NewSession("sess-1", 7, now)}

		w := doRequest(t, svc, `{"toggleSymptomId":1,"date":"2026-09-02","description":"Стук"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sess-1", svc.gotSessionID)
		assert.Equal(t, int64(7), svc.gotUserID)

		require.NotNil(t, svc.gotChanges.ToggleSymptomID)
		assert.Equal(t, int64(1), *svc.gotChanges.ToggleSymptomID)
		require.NotNil(t, svc.gotChanges.Date)
		assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), *svc.gotChanges.Date)
		require.NotNil(t, svc.gotChanges.Description)
		assert.Equal(t, "Стук", *svc.gotChanges.Description)
		assert.Nil(t, svc.gotChanges.Time)

		var view map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "sess-1", view["sessionId"])
		assert.Equal(t, "editing", view["state"])
	})

	t.Run("malformed json", func(t *testing.T) {
		w := doRequest(t, &fakeService{}, `{broken`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		w := doRequest(t, &fakeService{}, `{"vehicle":10}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		w := doRequest(t, &fakeService{}, `{"date":"02.09.2026"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad time format", func(t *testing.T) {
		w := doRequest(t, &fakeService{}, `{"time":"1pm"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service errors map to statuses", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"session not found", intake.ErrSessionNotFound, http.StatusNotFound},
			{"access denied", intake.ErrAccessDenied, http.StatusForbidden},
			{"not editable", intake.ErrNotEditable, http.StatusConflict},
			{"empty changes", intake.ErrEmptyChanges, http.StatusBadRequest},
			{"vehicle not found", intake.ErrVehicleNotFound, http.StatusBadRequest},
			{"symptom not found", intake.ErrSymptomNotFound, http.StatusBadRequest},
			{"custom mode active", intake.ErrCustomModeActive, http.StatusBadRequest},
			{"date too soon", intake.ErrDateTooSoon, http.StatusBadRequest},
			{"slot not offered", intake.ErrSlotNotOffered, http.StatusBadRequest},
			{"internal", intake.ErrInternal, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := doRequest(t, &fakeService{err: tc.err}, `{"description":"x"}`)
				assert.Equal(t, tc.code, w.Code)
			})
		}
	})

	t.Run("missing auth header", func(t *testing.T) {
		h := NewHandler(&fakeService{}, stubLogger{})

		r := mux.NewRouter()
		r.Use(middleware.Auth)
		r.HandleFunc("/api/v1/intake/sessions/{sessionId}", h.Handle).Methods(http.MethodPatch)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/intake/sessions/sess-1", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
