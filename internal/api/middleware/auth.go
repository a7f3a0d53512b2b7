package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ShaMkot/ISRES-BookingService/internal/api/handlers"
)

type ctxKey struct{}

var userIDKey ctxKey

// Auth проверяет наличие заголовка X-User-ID и кладет идентификатор
// пользователя в контекст запроса. Проверка подлинности выполняется
// на уровне API gateway - сервис доверяет уже аутентифицированному
// идентификатору и выполняет только авторизационные проверки.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
