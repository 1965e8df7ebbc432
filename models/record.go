package models

import (
	"encoding/json"
	"time"
)

// Record is one row of a record kind. Business fields live in Fields so a single
// store and interceptor can serve every kind.
type Record struct {
	ID            int64
	Schema        *Schema
	Fields        Snapshot
	EnteredBy     int64
	EnteredByName string
	OwnerID       int64
	OwnerName     string
	CreatedAt     time.Time
}

// MarshalJSON flattens the business fields next to the bookkeeping columns
func (r Record) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(r.Fields)+6)
	for k, v := range r.Fields {
		doc[k] = v
	}
	doc["id"] = r.ID
	doc["entered_by"] = r.EnteredBy
	doc["entered_by_name"] = r.EnteredByName
	doc["created_at"] = r.CreatedAt
	if r.Schema != nil && r.Schema.OwnerColumn != "entered_by" {
		doc["employee_name"] = r.OwnerName
	}
	return json.Marshal(doc)
}

// Snapshot returns a copy of the record's business fields
func (r *Record) Snapshot() Snapshot {
	snap := make(Snapshot, len(r.Fields))
	for k, v := range r.Fields {
		snap[k] = v
	}
	return snap
}

// IsOwnedBy reports whether userID owns the record
func (r *Record) IsOwnedBy(userID int64) bool {
	return r.OwnerID == userID
}
