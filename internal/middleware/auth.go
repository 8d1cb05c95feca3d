package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skycast/skycast-go/internal/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that gates requests on a Bearer token from the
// Authorization header. A request with no credential is rejected with 401; a
// request with an invalid or expired credential is rejected with 403. On
// success the resolved user id is attached to the request context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := auth.FromHeader(r.Header.Get("Authorization"), secret)
			if err != nil {
				if errors.Is(err, auth.ErrNoCredential) {
					writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
					return
				}
				writeJSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
