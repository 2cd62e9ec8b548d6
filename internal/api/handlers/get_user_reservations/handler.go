package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers/intakeview"
	"github.com/m04kA/SMC-IntakeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeGateway/internal/integrations/garageservice"
)

const (
	msgUnauthorized  = "пользователь не идентифицирован"
	msgInvalidUserID = "некорректный ID пользователя"
	msgAccessDenied  = "доступ к чужим записям запрещен"
	msgUpstreamDown  = "сервис записи временно недоступен, попробуйте позже"
)

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []*intakeview.ReservationView `json:"reservations"`
	Total        int                           `json:"total"`
}

type Handler struct {
	provider ReservationsProvider
	logger   Logger
}

func NewHandler(provider ReservationsProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
// История записей пользователя (прокси внешнего API)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Пользователь видит только свою историю
	if userID != authUserID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: auth_user_id=%d, requested_user_id=%d",
			authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	reservations, err := h.provider.ListUserReservations(r.Context(), userID)
	if err != nil {
		if errors.Is(err, garageservice.ErrUnauthorized) {
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("GET /users/{id}/reservations - Failed to list reservations: user_id=%d, error=%v", userID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpstreamDown)
		return
	}

	views := make([]*intakeview.ReservationView, 0, len(reservations))
	for _, reservation := range reservations {
		views = append(views, intakeview.FromReservation(reservation))
	}

	h.logger.Info("GET /users/{id}/reservations - Retrieved %d reservations for user_id=%d", len(views), userID)
	handlers.RespondJSON(w, http.StatusOK, ReservationListResponse{
		Reservations: views,
		Total:        len(views),
	})
}
