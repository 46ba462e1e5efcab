package delivery

import (
	"context"
	"net/http"

	"github.com/Vovarama1992/vidbrief/internal/ports"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware validates the X-Auth token and puts the user id into
// the request context. Routes behind it always see a valid user.
func AuthMiddleware(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Auth")
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing token")
				return
			}

			userID, err := auth.ValidateToken(r.Context(), token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
