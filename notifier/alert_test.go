package notifier

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/finportal/models"
)

func TestAlertFor(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.AuditLogEntry
		ok      bool
		level   Level
		message string
	}{
		{
			name:    "update is informational",
			entry:   models.AuditLogEntry{Action: models.ActionUpdate, TableName: "transactions"},
			ok:      true,
			level:   LevelInfo,
			message: "One of your transactions records has been updated by an admin",
		},
		{
			name:    "delete is a warning",
			entry:   models.AuditLogEntry{Action: models.ActionDelete, TableName: "advances"},
			ok:      true,
			level:   LevelWarning,
			message: "One of your advances records has been deleted by an admin",
		},
		{
			name:  "other actions are ignored",
			entry: models.AuditLogEntry{Action: "CREATE", TableName: "bills"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, ok := AlertFor(tt.entry)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.level, alert.Level)
			assert.Equal(t, tt.message, alert.Message)
		})
	}
}

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)

	alert, _ := AlertFor(models.AuditLogEntry{
		Action:    models.ActionDelete,
		TableName: "bills",
		RecordID:  42,
		Timestamp: time.Now(),
	})
	sink.Emit(alert)

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "One of your bills records has been deleted by an admin (record #42)")
}

func TestSinkFunc(t *testing.T) {
	var got []Alert
	var sink Sink = SinkFunc(func(a Alert) { got = append(got, a) })

	sink.Emit(Alert{Message: "hello"})

	assert.Len(t, got, 1)
}
