package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

// AuditRepository handles audit log persistence. Entries are append-only.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	GetByUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error)
	GetByRecord(ctx context.Context, tableName string, recordID int64) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db  DBTX
	now func() time.Time
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db DBTX) AuditRepository {
	return &sqliteAuditRepository{db: db, now: utcNow}
}

// NewAuditRepositoryWithClock creates an audit repository that stamps entries using now
func NewAuditRepositoryWithClock(db DBTX, now func() time.Time) AuditRepository {
	return &sqliteAuditRepository{db: db, now: now}
}

// Create inserts a new audit log entry and fills in its ID and Timestamp.
// The timestamp never goes below the latest stored one, so ordering by timestamp
// agrees with insertion order even if the wall clock steps back.
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	if entry.Action != models.ActionUpdate && entry.Action != models.ActionDelete {
		return fmt.Errorf("unsupported audit action %q: %w", entry.Action, apperrors.ErrValidation)
	}

	ts := r.now().UTC()

	var last time.Time
	err := r.db.QueryRowContext(ctx, `SELECT timestamp FROM audit_logs ORDER BY id DESC LIMIT 1`).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return storageErr("read latest audit timestamp", err)
	case ts.Before(last):
		ts = last
	}

	query := `
		INSERT INTO audit_logs (user_id, actor_id, action, table_name, record_id, old_values, new_values, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		entry.ActorID,
		entry.Action,
		entry.TableName,
		entry.RecordID,
		nullString(entry.OldValues),
		nullString(entry.NewValues),
		ts,
	)
	if err != nil {
		return storageErr("create audit log", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get inserted ID", err)
	}

	entry.ID = id
	entry.Timestamp = ts
	return nil
}

// GetByUser returns the entries attributed to userID, newest first
func (r *sqliteAuditRepository) GetByUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error) {
	query := selectAuditSQL + ` WHERE user_id = ? ORDER BY timestamp DESC, id DESC`
	return r.list(ctx, query, userID)
}

// GetByRecord returns the entries for one record, newest first
func (r *sqliteAuditRepository) GetByRecord(ctx context.Context, tableName string, recordID int64) ([]models.AuditLogEntry, error) {
	query := selectAuditSQL + ` WHERE table_name = ? AND record_id = ? ORDER BY timestamp DESC, id DESC`
	return r.list(ctx, query, tableName, recordID)
}

const selectAuditSQL = `
	SELECT id, user_id, actor_id, action, table_name, record_id, old_values, new_values, timestamp
	FROM audit_logs`

func (r *sqliteAuditRepository) list(ctx context.Context, query string, args ...any) ([]models.AuditLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("query audit logs", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		var entry models.AuditLogEntry
		var oldValues, newValues sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ActorID,
			&entry.Action,
			&entry.TableName,
			&entry.RecordID,
			&oldValues,
			&newValues,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, storageErr("scan audit log", err)
		}

		if oldValues.Valid {
			entry.OldValues = &oldValues.String
		}
		if newValues.Valid {
			entry.NewValues = &newValues.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, storageErr("iterate audit logs", err)
	}

	return entries, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
