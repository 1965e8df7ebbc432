package services

import (
	"context"
	"fmt"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/repositories"
)

// AuditService exposes the audit trail for review, newest entries first
type AuditService interface {
	GetByUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error)
	GetByRecord(ctx context.Context, tableName string, recordID int64) ([]models.AuditLogEntry, error)
}

type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetByUser returns the entries whose changes affected userID
func (s *auditService) GetByUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error) {
	entries, err := s.auditRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs for user %d: %w", userID, err)
	}
	return entries, nil
}

// GetByRecord returns the history of one record. Only known record tables are accepted.
func (s *auditService) GetByRecord(ctx context.Context, tableName string, recordID int64) ([]models.AuditLogEntry, error) {
	if _, ok := models.SchemaFor(tableName); !ok {
		return nil, fmt.Errorf("unknown table %q: %w", tableName, apperrors.ErrValidation)
	}
	if recordID <= 0 {
		return nil, fmt.Errorf("invalid record ID: %d: %w", recordID, apperrors.ErrValidation)
	}

	entries, err := s.auditRepo.GetByRecord(ctx, tableName, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs for %s %d: %w", tableName, recordID, err)
	}
	return entries, nil
}
