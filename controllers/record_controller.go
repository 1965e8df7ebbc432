package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/services"
	"github.com/blogem/finportal/userctx"
)

// RecordController serves the CRUD endpoints of one record kind
type RecordController struct {
	schema  *models.Schema
	records services.RecordService
	logger  *zap.Logger
}

// NewRecordController creates a controller for schema
func NewRecordController(schema *models.Schema, records services.RecordService, logger *zap.Logger) *RecordController {
	return &RecordController{
		schema:  schema,
		records: records,
		logger:  logger.Named(schema.Table),
	}
}

// Create stores a new record entered by the caller
func (rc *RecordController) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := rc.caller(w, r)
	if !ok {
		return
	}

	form := rc.schema.NewForm()
	if err := decodeJSON(r, form); err != nil {
		respondServiceError(w, rc.logger, err, "")
		return
	}

	record, err := rc.records.Create(r.Context(), rc.schema, caller, form)
	if err != nil {
		respondServiceError(w, rc.logger, err, "An error occurred while creating the "+rc.schema.Singular)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":                 rc.schema.Title() + " created successfully",
		rc.schema.Singular + "Id": record.ID,
		rc.schema.Singular:        record,
	})
}

// List returns the records visible to the caller
func (rc *RecordController) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := rc.caller(w, r)
	if !ok {
		return
	}

	records, err := rc.records.List(r.Context(), rc.schema, caller)
	if err != nil {
		respondServiceError(w, rc.logger, err, "An error occurred while fetching "+rc.schema.Table)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{rc.schema.Table: records})
}

// Get returns one record
func (rc *RecordController) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := rc.caller(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondServiceError(w, rc.logger, err, "")
		return
	}

	record, err := rc.records.Get(r.Context(), rc.schema, caller, id)
	if err != nil {
		respondServiceError(w, rc.logger, err, "An error occurred while fetching the "+rc.schema.Singular)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{rc.schema.Singular: record})
}

// Update replaces the business fields of a record. Admin only; audited.
func (rc *RecordController) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := rc.caller(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondServiceError(w, rc.logger, err, "")
		return
	}

	form := rc.schema.NewForm()
	if err := decodeJSON(r, form); err != nil {
		respondServiceError(w, rc.logger, err, "")
		return
	}

	record, err := rc.records.Update(r.Context(), rc.schema, caller, id, form)
	if err != nil {
		respondServiceError(w, rc.logger, err, "Failed to update "+rc.schema.Singular)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":          rc.schema.Title() + " updated successfully",
		rc.schema.Singular: record,
	})
}

// Delete removes a record. Admin only; audited.
func (rc *RecordController) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := rc.caller(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondServiceError(w, rc.logger, err, "")
		return
	}

	if err := rc.records.Delete(r.Context(), rc.schema, caller, id); err != nil {
		respondServiceError(w, rc.logger, err, "Failed to delete "+rc.schema.Singular)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": rc.schema.Title() + " deleted successfully"})
}

func (rc *RecordController) caller(w http.ResponseWriter, r *http.Request) (userctx.Identity, bool) {
	id, ok := userctx.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
	}
	return id, ok
}
