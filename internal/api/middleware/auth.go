package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-IntakeGateway/internal/api/handlers"
)

// userIDHeader заголовок идентификации пользователя.
// Аутентификация (проверка токена) выполняется выше по течению;
// шлюз доверяет заголовку так же, как остальные сервисы.
const userIDHeader = "X-User-ID"

const msgMissingUserID = "требуется заголовок X-User-ID"

type contextKey string

const userIDContextKey contextKey = "userID"

// Auth middleware требует валидный заголовок X-User-ID и кладет ID
// пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}
