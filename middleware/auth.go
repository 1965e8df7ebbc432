package middleware

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/userctx"
)

// Session keys written at login
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// RequireAuth ensures the request carries a logged-in session.
// Unauthenticated API calls get a JSON 401 instead of a redirect.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromSession(session.GetSession(r))
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "Unauthorized",
				"message": "Authentication required",
			})
			return
		}

		// Add the caller to the request context for use in handlers
		next.ServeHTTP(w, r.WithContext(userctx.SetIdentity(r.Context(), id)))
	})
}

// IdentityFromSession reads the caller stored by a successful login
func IdentityFromSession(sess session.Store) (userctx.Identity, bool) {
	if sess == nil {
		return userctx.Identity{}, false
	}

	userID, ok := sess.Get(SessionUserID).(int64)
	if !ok || userID <= 0 {
		return userctx.Identity{}, false
	}
	username, _ := sess.Get(SessionUsername).(string)
	role, _ := sess.Get(SessionRole).(string)

	return userctx.Identity{UserID: userID, Username: username, Role: models.Role(role)}, true
}
