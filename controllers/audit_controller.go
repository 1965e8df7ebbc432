package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/finportal/services"
	"github.com/blogem/finportal/userctx"
)

// AuditController exposes the audit trail
type AuditController struct {
	audit  services.AuditService
	logger *zap.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(audit services.AuditService, logger *zap.Logger) *AuditController {
	return &AuditController{audit: audit, logger: logger.Named("audit")}
}

// UserLogs returns the changes that affected the logged-in user, newest first
func (ac *AuditController) UserLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := userctx.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	entries, err := ac.audit.GetByUser(r.Context(), id.UserID)
	if err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred while fetching audit logs")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"auditLogs": entries})
}

// RecordLogs returns the history of one record, newest first
func (ac *AuditController) RecordLogs(w http.ResponseWriter, r *http.Request) {
	recordID, err := pathID(r, "record_id")
	if err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred while fetching audit logs")
		return
	}

	table := chi.URLParam(r, "table_name")
	ac.logger.Debug("Record history requested",
		zap.String("user", userctx.GetUsername(r.Context())),
		zap.String("table", table),
		zap.Int64("record_id", recordID))

	entries, err := ac.audit.GetByRecord(r.Context(), table, recordID)
	if err != nil {
		respondServiceError(w, ac.logger, err, "An error occurred while fetching audit logs")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"auditLogs": entries})
}
