package start_intake

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/intakeview"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
)

const msgUnauthorized = "пользователь не идентифицирован"

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

// Handle POST /api/v1/intake/sessions
// Открывает intake-сессию: загружает каталог и создает пустой черновик
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	session, err := h.service.StartIntake(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /intake/sessions - Failed to start intake: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /intake/sessions - Session started: session_id=%s, user_id=%d", session.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, intakeview.FromSession(session, time.Now()))
}
