package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/intakeview"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeGateway/internal/integrations/garageservice"
	"github.com/m04kA/SMC-IntakeGateway/internal/service/intake"
	submitUC "github.com/m04kA/SMC-IntakeGateway/internal/usecase/submit_reservation"
)

const (
	msgUnauthorized       = "пользователь не идентифицирован"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgAccessDenied       = "доступ к чужой сессии запрещен"
	msgSubmissionInFlight = "отправка уже выполняется"
	msgAlreadySucceeded   = "запись уже создана"
	msgNotReady           = "черновик не готов к отправке"
	msgNoVehicle          = "выберите мотоцикл"
	msgNoDate             = "выберите дату записи"
	msgDateTooSoon        = "запись возможна не раньше завтрашнего дня"
	msgNoTime             = "выберите время записи"
	msgMajorTimeOnly      = "расширенный сервис доступен только в 13:00 и 15:00"
	msgEmptyDescription   = "опишите проблему своими словами"
	msgDescriptionTooLong = "описание слишком длинное"
	msgUpstreamDown       = "сервис записи временно недоступен, попробуйте позже"
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

// Handle POST /api/v1/intake/sessions/{sessionId}/submit
// Отправляет черновик во внешний API. Отказ внешнего API возвращается
// пользователю с дословным текстом причины; черновик сохраняется для
// исправления и повторной отправки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	reservation, err := h.service.Submit(r.Context(), sessionID, userID)
	if err != nil {
		// Отказ внешнего API: текст причины отдается дословно
		var rejection *garageservice.RejectionError
		if errors.As(err, &rejection) {
			h.logger.Warn("POST /intake/sessions/{id}/submit - Rejected by upstream: session_id=%s, user_id=%d, reason=%s",
				sessionID, userID, rejection.Message)
			handlers.RespondError(w, http.StatusConflict, rejection.Message)
			return
		}

		switch {
		case errors.Is(err, intake.ErrSessionNotFound):
			h.logger.Warn("POST /intake/sessions/{id}/submit - Session not found: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, intake.ErrAccessDenied):
			h.logger.Warn("POST /intake/sessions/{id}/submit - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, intake.ErrSubmissionInFlight):
			h.logger.Warn("POST /intake/sessions/{id}/submit - Submission in flight: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSubmissionInFlight)

		case errors.Is(err, intake.ErrAlreadySucceeded):
			handlers.RespondError(w, http.StatusConflict, msgAlreadySucceeded)

		case errors.Is(err, intake.ErrNotReady):
			h.logger.Warn("POST /intake/sessions/{id}/submit - Draft not ready: session_id=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondBadRequest(w, msgNotReady)

		case errors.Is(err, submitUC.ErrNoVehicle):
			handlers.RespondBadRequest(w, msgNoVehicle)

		case errors.Is(err, submitUC.ErrNoDate):
			handlers.RespondBadRequest(w, msgNoDate)

		case errors.Is(err, submitUC.ErrDateTooSoon):
			handlers.RespondBadRequest(w, msgDateTooSoon)

		case errors.Is(err, submitUC.ErrNoTime):
			handlers.RespondBadRequest(w, msgNoTime)

		case errors.Is(err, submitUC.ErrMajorTimeNotAllowed):
			handlers.RespondBadRequest(w, msgMajorTimeOnly)

		case errors.Is(err, submitUC.ErrEmptyDescription):
			handlers.RespondBadRequest(w, msgEmptyDescription)

		case errors.Is(err, submitUC.ErrDescriptionTooLong):
			handlers.RespondBadRequest(w, msgDescriptionTooLong)

		case errors.Is(err, garageservice.ErrInternal), errors.Is(err, garageservice.ErrInvalidResponse):
			h.logger.Error("POST /intake/sessions/{id}/submit - Upstream unavailable: session_id=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)

		default:
			h.logger.Error("POST /intake/sessions/{id}/submit - Failed to submit: session_id=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /intake/sessions/{id}/submit - Reservation created: reservation_id=%d, session_id=%s, user_id=%d",
		reservation.ID, sessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, intakeview.FromReservation(reservation))
}
