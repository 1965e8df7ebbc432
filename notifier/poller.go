package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/felixgeelhaar/statekit"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

// Poller states
const (
	StateIdle    = "idle"
	StatePolling = "polling"
)

const (
	eventStart = "start"
	eventStop  = "stop"
)

var (
	// ErrNotPolling is returned by Poll while the poller is idle, including when it
	// was stopped during the poll
	ErrNotPolling = errors.New("poller is idle")
	// ErrPollInFlight is returned when the previous poll has not finished yet
	ErrPollInFlight = errors.New("previous poll still running")
)

// AuditSource returns the audit entries that affected the logged-in user, newest first
type AuditSource interface {
	UserAuditLogs(ctx context.Context) ([]models.AuditLogEntry, error)
}

// Options configure a Poller
type Options struct {
	// Interval between polls
	Interval time.Duration
	// Window is how far back the first poll after Start looks
	Window time.Duration
	Now    func() time.Time
}

type pollerContext struct{}

// Poller periodically fetches the user's audit entries and emits an alert for every
// entry newer than the watermark. The watermark advances to the start time of each
// successful poll, so each entry is surfaced at most once per session.
type Poller struct {
	source AuditSource
	sink   Sink
	opts   Options
	logger *zap.Logger

	mu         sync.Mutex
	machine    *statekit.Interpreter[pollerContext]
	generation uint64
	cancel     context.CancelFunc
	loopDone   chan struct{}
	watermark  time.Time
	// seen holds entries surfaced with a timestamp past the watermark, which happens
	// when the server clock runs ahead of ours
	seen map[int64]time.Time
	// inFlight is set while a poll of session inFlightGen waits for its response.
	// A request left over from a stopped session never blocks the next one.
	inFlight    bool
	inFlightGen uint64
}

// NewPoller creates an idle poller
func NewPoller(source AuditSource, sink Sink, opts Options, logger *zap.Logger) (*Poller, error) {
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Second
	}
	if opts.Window <= 0 {
		opts.Window = 5 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	builder := statekit.NewMachine[pollerContext]("notification-poller").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(pollerContext{})

	builder.State(StateIdle).
		On(eventStart).Target(StatePolling).
		Done()

	builder.State(StatePolling).
		On(eventStop).Target(StateIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build poller state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Poller{
		source:  source,
		sink:    sink,
		opts:    opts,
		logger:  logger.Named("poller"),
		machine: interpreter,
		seen:    make(map[int64]time.Time),
	}, nil
}

// State returns StateIdle or StatePolling
func (p *Poller) State() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Poller) stateLocked() string {
	return string(p.machine.State().Value)
}

// Start begins polling for an employee session: one poll right away, then one per
// interval until Stop or ctx is done. Other roles never poll. It reports whether
// polling was started.
func (p *Poller) Start(ctx context.Context, role models.Role) bool {
	loopCtx, done, ok := p.begin(ctx, role)
	if !ok {
		return false
	}
	go p.loop(loopCtx, done)
	return true
}

// begin moves Idle -> Polling and resets the watermark for the new session
func (p *Poller) begin(ctx context.Context, role models.Role) (context.Context, chan struct{}, bool) {
	if role != models.RoleEmployee {
		p.logger.Debug("Notifications are only polled for employees", zap.String("role", string(role)))
		return nil, nil, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stateLocked() == StatePolling {
		return nil, nil, false
	}

	p.machine.Send(statekit.Event{Type: eventStart})
	p.generation++
	p.watermark = time.Time{}
	p.seen = make(map[int64]time.Time)

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.loopDone = make(chan struct{})
	return loopCtx, p.loopDone, true
}

// Stop moves the poller to Idle. No alert is emitted after Stop returns, even for
// a poll whose response is still in flight.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Poller) stopLocked() {
	if p.stateLocked() != StatePolling {
		return
	}
	p.machine.Send(statekit.Event{Type: eventStop})
	p.generation++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	for {
		if err := p.Poll(ctx); errors.Is(err, ErrNotPolling) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Poll runs one poll cycle. A failed fetch is logged and leaves the watermark where
// it was; an authentication failure stops the poller.
func (p *Poller) Poll(ctx context.Context) error {
	p.mu.Lock()
	if p.stateLocked() != StatePolling {
		p.mu.Unlock()
		return ErrNotPolling
	}
	gen := p.generation
	if p.inFlight && p.inFlightGen == gen {
		p.mu.Unlock()
		p.logger.Debug("Skipping poll, previous one still running")
		return ErrPollInFlight
	}
	p.inFlight, p.inFlightGen = true, gen
	p.mu.Unlock()

	started := p.opts.Now()
	entries, err := p.source.UserAuditLogs(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inFlightGen == gen {
		p.inFlight = false
	}

	// Stopped (or restarted) while the request was in flight
	if p.generation != gen || p.stateLocked() != StatePolling {
		return ErrNotPolling
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			p.logger.Warn("Session is no longer valid, stopping notifications", zap.Error(err))
			p.stopLocked()
			return err
		}
		p.logger.Warn("Audit poll failed", zap.Error(err))
		return err
	}

	cutoff := p.watermark
	if cutoff.IsZero() {
		cutoff = started.Add(-p.opts.Window)
	}

	emitted := 0
	for _, entry := range entries {
		if !entry.Timestamp.After(cutoff) {
			continue
		}
		if _, dup := p.seen[entry.ID]; dup {
			continue
		}
		p.seen[entry.ID] = entry.Timestamp

		if alert, ok := AlertFor(entry); ok {
			p.sink.Emit(alert)
			emitted++
		}
	}

	p.watermark = started
	for id, ts := range p.seen {
		if !ts.After(started) {
			delete(p.seen, id)
		}
	}

	if emitted > 0 {
		p.logger.Debug("Emitted alerts", zap.Int("count", emitted))
	}
	return nil
}
