package get_intake

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/intakeview"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake"
)

const (
	msgUnauthorized    = "пользователь не идентифицирован"
	msgSessionNotFound = "сессия не найдена или истекла"
	msgAccessDenied    = "доступ к чужой сессии запрещен"
)

type Handler struct {
	service IntakeService
	logger  Logger
}

func NewHandler(service IntakeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/intake/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.GetSession(sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrSessionNotFound):
			h.logger.Warn("GET /intake/sessions/{id} - Session not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrAccessDenied):
			h.logger.Warn("GET /intake/sessions/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /intake/sessions/{id} - Failed to get session: session_id=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, intakeview.FromSession(session, time.Now()))
}
