package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

type pollResult struct {
	entries []models.AuditLogEntry
	err     error
}

type fakeSource struct {
	mu      sync.Mutex
	results []pollResult
	calls   int
	entered chan struct{}
	gate    chan struct{}
}

func (f *fakeSource) UserAuditLogs(ctx context.Context) ([]models.AuditLogEntry, error) {
	f.mu.Lock()
	var r pollResult
	if f.calls < len(f.results) {
		r = f.results[f.calls]
	}
	f.calls++
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	return r.entries, r.err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingSink struct {
	mu     sync.Mutex
	alerts []Alert
}

func (s *recordingSink) Emit(alert Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, alert)
}

func (s *recordingSink) all() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alert(nil), s.alerts...)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func entryAt(id int64, action models.AuditAction, ts time.Time) models.AuditLogEntry {
	return models.AuditLogEntry{ID: id, UserID: 3, ActorID: 1, Action: action, TableName: "bills", RecordID: id, Timestamp: ts}
}

func newTestPoller(t *testing.T, src *fakeSource, clock *fakeClock) (*Poller, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	p, err := NewPoller(src, sink, Options{Interval: time.Hour, Window: 5 * time.Minute, Now: clock.Now}, zap.NewNop())
	require.NoError(t, err)
	return p, sink
}

// beginPolling enters Polling without launching the background loop so tests can drive Poll
func beginPolling(t *testing.T, p *Poller) {
	t.Helper()
	_, _, ok := p.begin(context.Background(), models.RoleEmployee)
	require.True(t, ok)
	require.Equal(t, StatePolling, p.State())
}

func TestPollSurfacesOnlyEntriesAfterWatermark(t *testing.T) {
	clock := &fakeClock{now: t0.Add(-5 * time.Second)}
	src := &fakeSource{results: []pollResult{
		{},
		{entries: []models.AuditLogEntry{
			entryAt(3, models.ActionUpdate, t0.Add(-3*time.Second)),
			entryAt(2, models.ActionUpdate, t0.Add(-10*time.Second)),
			entryAt(1, models.ActionDelete, t0.Add(-60*time.Second)),
		}},
	}}
	p, sink := newTestPoller(t, src, clock)
	beginPolling(t, p)

	require.NoError(t, p.Poll(context.Background()))
	clock.Set(t0)
	require.NoError(t, p.Poll(context.Background()))

	alerts := sink.all()
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(3), alerts[0].Entry.ID)
	assert.Equal(t, LevelInfo, alerts[0].Level)
}

func TestFirstPollLooksBackOverWindow(t *testing.T) {
	clock := &fakeClock{now: t0}
	src := &fakeSource{results: []pollResult{
		{entries: []models.AuditLogEntry{
			entryAt(2, models.ActionDelete, t0.Add(-4*time.Minute)),
			entryAt(1, models.ActionUpdate, t0.Add(-6*time.Minute)),
		}},
	}}
	p, sink := newTestPoller(t, src, clock)
	beginPolling(t, p)

	require.NoError(t, p.Poll(context.Background()))

	alerts := sink.all()
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(2), alerts[0].Entry.ID)
	assert.Equal(t, LevelWarning, alerts[0].Level)
	assert.Equal(t, "One of your bills records has been deleted by an admin", alerts[0].Message)
}

func TestPollNeverRepeatsAnEntry(t *testing.T) {
	clock := &fakeClock{now: t0}
	ahead := entryAt(1, models.ActionUpdate, t0.Add(2*time.Second)) // server clock ahead of ours
	later := entryAt(2, models.ActionUpdate, t0.Add(10*time.Second))
	src := &fakeSource{results: []pollResult{
		{entries: []models.AuditLogEntry{ahead}},
		{entries: []models.AuditLogEntry{later, ahead}},
		{entries: []models.AuditLogEntry{later, ahead}},
	}}
	p, sink := newTestPoller(t, src, clock)
	beginPolling(t, p)

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Poll(context.Background()))
		clock.Set(clock.Now().Add(30 * time.Second))
	}

	alerts := sink.all()
	require.Len(t, alerts, 2)
	assert.Equal(t, int64(1), alerts[0].Entry.ID)
	assert.Equal(t, int64(2), alerts[1].Entry.ID)
}

func TestFailedPollKeepsWatermark(t *testing.T) {
	clock := &fakeClock{now: t0}
	src := &fakeSource{results: []pollResult{
		{},
		{err: errors.New("connection refused")},
		{entries: []models.AuditLogEntry{entryAt(1, models.ActionUpdate, t0.Add(20*time.Second))}},
	}}
	p, sink := newTestPoller(t, src, clock)
	beginPolling(t, p)

	require.NoError(t, p.Poll(context.Background()))

	clock.Set(t0.Add(30 * time.Second))
	assert.Error(t, p.Poll(context.Background()))
	assert.Equal(t, StatePolling, p.State())

	clock.Set(t0.Add(60 * time.Second))
	require.NoError(t, p.Poll(context.Background()))

	require.Len(t, sink.all(), 1)
}

func TestUnauthorizedStopsPolling(t *testing.T) {
	clock := &fakeClock{now: t0}
	src := &fakeSource{results: []pollResult{
		{err: fmt.Errorf("GET /api/audit/user: %w", apperrors.ErrUnauthorized)},
	}}
	p, _ := newTestPoller(t, src, clock)
	beginPolling(t, p)

	err := p.Poll(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, StateIdle, p.State())
	assert.ErrorIs(t, p.Poll(context.Background()), ErrNotPolling)
}

func TestAdminNeverPolls(t *testing.T) {
	src := &fakeSource{}
	p, _ := newTestPoller(t, src, &fakeClock{now: t0})

	assert.False(t, p.Start(context.Background(), models.RoleAdmin))
	assert.Equal(t, StateIdle, p.State())
	assert.ErrorIs(t, p.Poll(context.Background()), ErrNotPolling)
	assert.Zero(t, src.callCount())
}

func TestStartPollsImmediately(t *testing.T) {
	clock := &fakeClock{now: t0}
	src := &fakeSource{results: []pollResult{
		{entries: []models.AuditLogEntry{entryAt(1, models.ActionUpdate, t0.Add(-time.Minute))}},
	}}
	p, sink := newTestPoller(t, src, clock)

	require.True(t, p.Start(context.Background(), models.RoleEmployee))
	assert.False(t, p.Start(context.Background(), models.RoleEmployee), "already polling")

	assert.Eventually(t, func() bool { return len(sink.all()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "One of your bills records has been updated by an admin", sink.all()[0].Message)

	p.Stop()
	assert.Equal(t, StateIdle, p.State())
	select {
	case <-p.loopDone:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not exit after Stop")
	}
}

func TestStopDiscardsInFlightResponse(t *testing.T) {
	clock := &fakeClock{now: t0}
	src := &fakeSource{
		results: []pollResult{
			{entries: []models.AuditLogEntry{entryAt(1, models.ActionDelete, t0.Add(-time.Second))}},
		},
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	p, sink := newTestPoller(t, src, clock)

	require.True(t, p.Start(context.Background(), models.RoleEmployee))
	<-src.entered

	p.Stop()
	close(src.gate)

	select {
	case <-p.loopDone:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not exit after Stop")
	}
	assert.Empty(t, sink.all())
	assert.Equal(t, StateIdle, p.State())
}

func TestRestartWhileResponseInFlightPollsImmediately(t *testing.T) {
	clock := &fakeClock{now: t0}
	stale := entryAt(1, models.ActionUpdate, t0.Add(-time.Second))
	fresh := entryAt(2, models.ActionDelete, t0.Add(-time.Second))
	src := &fakeSource{
		results: []pollResult{
			{entries: []models.AuditLogEntry{stale}},
			{entries: []models.AuditLogEntry{fresh, stale}},
		},
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	p, sink := newTestPoller(t, src, clock)

	require.True(t, p.Start(context.Background(), models.RoleEmployee))
	<-src.entered
	firstLoop := p.loopDone

	p.Stop()
	require.True(t, p.Start(context.Background(), models.RoleEmployee))
	secondLoop := p.loopDone

	// The new session must reach the source while the old request is still blocked
	select {
	case <-src.entered:
	case <-time.After(time.Second):
		t.Fatal("new session did not poll right away")
	}
	close(src.gate)

	select {
	case <-firstLoop:
	case <-time.After(time.Second):
		t.Fatal("stopped poll loop did not exit")
	}
	assert.Eventually(t, func() bool { return len(sink.all()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, src.callCount())

	p.Stop()
	select {
	case <-secondLoop:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not exit after Stop")
	}
}

func TestOverlappingPollIsSkipped(t *testing.T) {
	clock := &fakeClock{now: t0}
	src := &fakeSource{entered: make(chan struct{}), gate: make(chan struct{})}
	p, _ := newTestPoller(t, src, clock)
	beginPolling(t, p)

	first := make(chan error, 1)
	go func() { first <- p.Poll(context.Background()) }()
	<-src.entered

	assert.ErrorIs(t, p.Poll(context.Background()), ErrPollInFlight)

	close(src.gate)
	assert.NoError(t, <-first)
	assert.Equal(t, 1, src.callCount())
}

func TestRestartResetsWatermark(t *testing.T) {
	clock := &fakeClock{now: t0}
	old := entryAt(1, models.ActionUpdate, t0.Add(-time.Minute))
	src := &fakeSource{results: []pollResult{
		{entries: []models.AuditLogEntry{old}},
		{entries: []models.AuditLogEntry{old}},
	}}
	p, sink := newTestPoller(t, src, clock)

	beginPolling(t, p)
	require.NoError(t, p.Poll(context.Background()))
	p.Stop()

	// A new session looks back over the window again
	beginPolling(t, p)
	require.NoError(t, p.Poll(context.Background()))

	assert.Len(t, sink.all(), 2)
}
