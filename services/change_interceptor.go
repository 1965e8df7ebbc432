package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/repositories"
)

// Mutation describes one UPDATE or DELETE of a record
type Mutation struct {
	Schema   *models.Schema
	RecordID int64
	Action   models.AuditAction
	// Fields holds the new business values; ignored for DELETE
	Fields  models.Snapshot
	ActorID int64
}

// ChangeInterceptor applies record mutations and writes their audit entries
type ChangeInterceptor interface {
	Mutate(ctx context.Context, m Mutation) (bool, error)
}

type changeInterceptor struct {
	uow    repositories.UnitOfWork
	logger *zap.Logger
}

// NewChangeInterceptor creates a change interceptor
func NewChangeInterceptor(uow repositories.UnitOfWork, logger *zap.Logger) ChangeInterceptor {
	return &changeInterceptor{
		uow:    uow,
		logger: logger.Named("interceptor"),
	}
}

// Mutate loads the current row, applies the change and records exactly one audit entry,
// all in one transaction. It returns false without writing an audit entry when no row
// was affected. The entry is attributed to the record's owner before the change.
func (c *changeInterceptor) Mutate(ctx context.Context, m Mutation) (bool, error) {
	if m.Schema == nil {
		return false, fmt.Errorf("mutation without schema: %w", apperrors.ErrValidation)
	}
	if m.Action != models.ActionUpdate && m.Action != models.ActionDelete {
		return false, fmt.Errorf("unsupported action %q: %w", m.Action, apperrors.ErrValidation)
	}

	applied := false
	err := c.uow.Within(ctx, func(ctx context.Context, repos repositories.TxRepositories) error {
		current, err := repos.Records.GetByID(ctx, m.Schema, m.RecordID)
		if err != nil {
			return err
		}

		entry := &models.AuditLogEntry{
			UserID:    current.OwnerID,
			ActorID:   m.ActorID,
			Action:    m.Action,
			TableName: m.Schema.Table,
			RecordID:  m.RecordID,
		}

		oldValues, err := m.Schema.Encode(current.Fields)
		if err != nil {
			return err
		}
		entry.OldValues = &oldValues

		var affected int64
		switch m.Action {
		case models.ActionUpdate:
			newValues, err := m.Schema.Encode(m.Fields)
			if err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
			}
			entry.NewValues = &newValues
			affected, err = repos.Records.Update(ctx, m.Schema, m.RecordID, m.Fields)
			if err != nil {
				return err
			}
		case models.ActionDelete:
			affected, err = repos.Records.Delete(ctx, m.Schema, m.RecordID)
			if err != nil {
				return err
			}
		}

		if affected == 0 {
			return nil
		}

		if err := repos.Audit.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to write audit entry: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if applied {
		c.logger.Info("Record mutated",
			zap.String("table", m.Schema.Table),
			zap.Int64("record_id", m.RecordID),
			zap.String("action", string(m.Action)),
			zap.Int64("actor_id", m.ActorID),
		)
	}
	return applied, nil
}
