package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/authenticator"
	"github.com/blogem/finportal/middleware"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/services"
	"github.com/blogem/finportal/userctx"
)

const sessionOIDCState = "oidc_state"

// AuthController handles password and single sign-on login
type AuthController struct {
	auth   services.AuthService
	sso    authenticator.Provider
	logger *zap.Logger
}

// NewAuthController creates a new auth controller. sso may be nil.
func NewAuthController(auth services.AuthService, sso authenticator.Provider, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, sso: sso, logger: logger.Named("auth")}
}

// Login checks the posted credentials and starts a session
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := ac.auth.Authenticate(r.Context(), &form)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	case err != nil:
		respondServiceError(w, ac.logger, err, "An error occurred during login")
		return
	}

	if err := startSession(session.GetSession(r), user); err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred during login")
		return
	}

	ac.logger.Info("User logged in", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout ends the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := session.GetSession(r).Flush(); err != nil {
		respondServiceError(w, ac.logger, err, "Could not log out, please try again")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Me returns the logged-in user
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := userctx.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := ac.auth.GetUser(r.Context(), id.UserID)
	if err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred while fetching user data")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// SSOLogin redirects to the identity provider
func (ac *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if ac.sso == nil {
		respondError(w, http.StatusNotFound, "Single sign-on is not configured")
		return
	}

	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		respondServiceError(w, ac.logger, err, "Failed to start single sign-on")
		return
	}

	// Save the state in the session to validate in callback
	if err := session.GetSession(r).Set(sessionOIDCState, state); err != nil {
		respondServiceError(w, ac.logger, err, "Failed to start single sign-on")
		return
	}

	http.Redirect(w, r, ac.sso.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// SSOCallback completes the code flow and logs in the portal account named by the
// provider's claims
func (ac *AuthController) SSOCallback(w http.ResponseWriter, r *http.Request) {
	if ac.sso == nil {
		respondError(w, http.StatusNotFound, "Single sign-on is not configured")
		return
	}

	sess := session.GetSession(r)

	// Verify state
	storedState, _ := sess.Get(sessionOIDCState).(string)
	if storedState == "" || r.URL.Query().Get("state") != storedState {
		respondError(w, http.StatusBadRequest, "Invalid state parameter")
		return
	}
	_ = sess.Delete(sessionOIDCState)

	claims, err := ac.sso.Identify(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		ac.logger.Warn("SSO sign-in failed", zap.Error(err))
		respondError(w, http.StatusUnauthorized, "Single sign-on failed")
		return
	}

	user, err := ac.auth.FindForSSO(r.Context(), claims.UsernameCandidates()...)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		ac.logger.Warn("SSO identity has no portal account", zap.String("subject", claims.Subject()))
		respondError(w, http.StatusUnauthorized, "No portal account matches this identity")
		return
	}
	if err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred during login")
		return
	}

	if err := startSession(sess, user); err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred during login")
		return
	}

	ac.logger.Info("User logged in via SSO", zap.String("username", user.Username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func startSession(sess session.Store, user *models.User) error {
	if err := sess.Set(middleware.SessionUserID, user.ID); err != nil {
		return err
	}
	if err := sess.Set(middleware.SessionUsername, user.Username); err != nil {
		return err
	}
	return sess.Set(middleware.SessionRole, string(user.Role))
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
