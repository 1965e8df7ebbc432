package middleware

import (
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"
)

// MutationLogger logs every POST/PUT/DELETE request with the caller and client address.
// It must run after the session middleware.
func MutationLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			// Read the caller before the handler runs: logout flushes the session.
			// A login has no caller yet, so fall back to the session it started.
			sess := session.GetSession(r)
			id, ok := IdentityFromSession(sess)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			if !ok {
				id, ok = IdentityFromSession(sess)
			}
			user := "anonymous"
			if ok {
				user = id.Username
			}

			logger.Info("Mutation request",
				zap.String("user", user),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.String("ip", getIPAddress(r)),
				zap.String("user_agent", r.UserAgent()),
			)
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take first IP if multiple
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr without the port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
