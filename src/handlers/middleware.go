package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

type contextKey string

const (
	userIDContextKey    contextKey = "userID"
	requestIDContextKey contextKey = "requestID"
)

// GetUserIDFromContext returns the authenticated owner id placed in the
// request context by AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}

// ContextualLoggerMiddleware attaches a request-scoped logger carrying a
// generated requestID to every request.
func ContextualLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		ctxLogger := logger.L.With(slog.String("requestID", requestID))

		ctx := logger.ToContext(r.Context(), ctxLogger)
		ctx = context.WithValue(ctx, requestIDContextKey, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware validates the bearer token and threads the explicit owner id
// through the request context. Requests without a valid token never reach the
// pipeline.
func (h *UserHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			ctxLogger.Debug("AuthMiddleware: Authorization header missing", "path", r.URL.Path)
			utils.SendJSONError(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			ctxLogger.Debug("AuthMiddleware: Token string empty", "path", r.URL.Path)
			utils.SendJSONError(w, "Malformed token", http.StatusUnauthorized)
			return
		}

		userID, err := h.authService.ValidateToken(tokenString)
		if err != nil {
			ctxLogger.Warn("AuthMiddleware: Token validation failed", "path", r.URL.Path, "error", err)
			utils.SendJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctxLogger = ctxLogger.With(slog.Int64("userID", userID))
		ctx := logger.ToContext(r.Context(), ctxLogger)
		ctx = context.WithValue(ctx, userIDContextKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
