package close_intake

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers"
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

// Handle DELETE /api/v1/intake/sessions/{sessionId}
// Явно закрывает сессию: черновик отбрасывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.CloseSession(sessionID, userID); err != nil {
		switch {
		case errors.Is(err, intake.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrAccessDenied):
			h.logger.Warn("DELETE /intake/sessions/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /intake/sessions/{id} - Failed to close session: session_id=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
