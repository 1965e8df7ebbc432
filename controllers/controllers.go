package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/authenticator"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Records map[string]*RecordController
	Audit   *AuditController
}

// NewControllers creates and initializes all controller instances.
// sso may be nil when single sign-on is not configured.
func NewControllers(srvs *services.Services, sso authenticator.Provider, logger *zap.Logger) *Controllers {
	records := make(map[string]*RecordController)
	for _, schema := range models.Schemas() {
		records[schema.Table] = NewRecordController(schema, srvs.Records, logger)
	}

	return &Controllers{
		Auth:    NewAuthController(srvs.Auth, sso, logger),
		Records: records,
		Audit:   NewAuditController(srvs.Audit, logger),
	}
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error   string                   `json:"error"`
	Message string                   `json:"message"`
	Details []models.ValidationError `json:"details,omitempty"`
}

// respondJSON writes data as a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error body for status
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Error: http.StatusText(status), Message: message})
}

// respondServiceError maps a service error onto an HTTP status. Unexpected errors are
// logged and reported with the generic fallback message.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, errorBody{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: verrs.Error(),
			Details: verrs,
		})
	case errors.Is(err, apperrors.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		respondError(w, http.StatusConflict, err.Error())
	default:
		logger.Error(fallback, zap.Error(err))
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON reads the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", apperrors.ErrValidation)
	}
	return nil
}

// pathID parses a positive integer URL parameter
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %w", name, apperrors.ErrValidation)
	}
	return id, nil
}
