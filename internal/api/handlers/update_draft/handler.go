package update_draft

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
	msgUnauthorized       = "пользователь не идентифицирован"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgAccessDenied       = "доступ к чужой сессии запрещен"
	msgNotEditable        = "черновик нельзя менять, пока отправка не завершена"
	msgEmptyChanges       = "запрос не содержит изменений"
	msgVehicleNotFound    = "мотоцикл не найден"
	msgSymptomNotFound    = "симптом не найден"
	msgCustomModeActive   = "недоступно в режиме свободного описания"
	msgDateTooSoon        = "запись возможна не раньше завтрашнего дня"
	msgSlotNotOffered     = "выбранное время отсутствует в списке доступных слотов"
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

// Handle PATCH /api/v1/intake/sessions/{sessionId}
// Применяет изменения черновика; при смене даты или типа сервиса
// запускает перезапрос слотов (актуальный список - через GET)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /intake/sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	changes, err := req.ToDraftChanges()
	if err != nil {
		h.logger.Warn("PATCH /intake/sessions/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	session, err := h.service.ApplyChanges(r.Context(), sessionID, userID, changes)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrSessionNotFound):
			h.logger.Warn("PATCH /intake/sessions/{id} - Session not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrAccessDenied):
			h.logger.Warn("PATCH /intake/sessions/{id} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, intake.ErrNotEditable):
			h.logger.Warn("PATCH /intake/sessions/{id} - Not editable: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, intake.ErrEmptyChanges):
			handlers.RespondBadRequest(w, msgEmptyChanges)

		case errors.Is(err, intake.ErrVehicleNotFound):
			h.logger.Warn("PATCH /intake/sessions/{id} - Vehicle not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondBadRequest(w, msgVehicleNotFound)

		case errors.Is(err, intake.ErrSymptomNotFound):
			h.logger.Warn("PATCH /intake/sessions/{id} - Symptom not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondBadRequest(w, msgSymptomNotFound)

		case errors.Is(err, intake.ErrCustomModeActive):
			h.logger.Warn("PATCH /intake/sessions/{id} - Custom mode active: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondBadRequest(w, msgCustomModeActive)

		case errors.Is(err, intake.ErrDateTooSoon):
			h.logger.Warn("PATCH /intake/sessions/{id} - Date too soon: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondBadRequest(w, msgDateTooSoon)

		case errors.Is(err, intake.ErrSlotNotOffered):
			h.logger.Warn("PATCH /intake/sessions/{id} - Slot not offered: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		default:
			h.logger.Error("PATCH /intake/sessions/{id} - Failed to apply changes: session_id=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, intakeview.FromSession(session, time.Now()))
}
