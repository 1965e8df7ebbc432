package notifier

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/blogem/finportal/models"
)

// Level is the severity of an alert
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Alert is one notification shown to the affected employee
type Alert struct {
	Level   Level
	Message string
	Entry   models.AuditLogEntry
}

// Sink receives alerts. Emit is called with the poller's lock held and must not call
// back into the poller.
type Sink interface {
	Emit(alert Alert)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(alert Alert)

// Emit calls f(alert)
func (f SinkFunc) Emit(alert Alert) {
	f(alert)
}

// AlertFor builds the alert for an audit entry; UPDATE is informational, DELETE a warning
func AlertFor(entry models.AuditLogEntry) (Alert, bool) {
	switch entry.Action {
	case models.ActionUpdate:
		return Alert{
			Level:   LevelInfo,
			Message: fmt.Sprintf("One of your %s records has been updated by an admin", entry.TableName),
			Entry:   entry,
		}, true
	case models.ActionDelete:
		return Alert{
			Level:   LevelWarning,
			Message: fmt.Sprintf("One of your %s records has been deleted by an admin", entry.TableName),
			Entry:   entry,
		}, true
	}
	return Alert{}, false
}

// TerminalSink prints alerts as styled lines
type TerminalSink struct {
	mu      sync.Mutex
	out     io.Writer
	info    lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

// NewTerminalSink creates a sink writing to out
func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{
		out:     out,
		info:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Emit writes one alert line
func (s *TerminalSink) Emit(alert Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	style, tag := s.info, "INFO"
	if alert.Level == LevelWarning {
		style, tag = s.warning, "WARN"
	}

	fmt.Fprintf(s.out, "%s %s %s\n",
		s.muted.Render(alert.Entry.Timestamp.Local().Format(time.DateTime)),
		style.Render(tag),
		fmt.Sprintf("%s (record #%d)", alert.Message, alert.Entry.RecordID),
	)
}
