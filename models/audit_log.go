package models

import "time"

// AuditAction is the kind of change recorded in the audit log
type AuditAction string

const (
	ActionUpdate AuditAction = "UPDATE"
	ActionDelete AuditAction = "DELETE"
)

// AuditLogEntry is an immutable record of one successful UPDATE or DELETE.
// UserID is the user the changed record belonged to; ActorID performed the change.
type AuditLogEntry struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	ActorID   int64       `json:"actor_id"`
	Action    AuditAction `json:"action"`
	TableName string      `json:"table_name"`
	RecordID  int64       `json:"record_id"`
	OldValues *string     `json:"old_values"`
	NewValues *string     `json:"new_values"`
	Timestamp time.Time   `json:"timestamp"`
}
