package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/database"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/repositories"
)

type auditFixture struct {
	db    *sql.DB
	repos *repositories.Repositories
	srvs  *Services
	admin *models.User
	emp   *models.User
}

// newAuditFixture opens a migrated database with an admin (id 1), a second employee
// (id 2) and the employee under test (id 3)
func newAuditFixture(t *testing.T) *auditFixture {
	t.Helper()

	db, err := database.InitializeDatabase(context.Background(), filepath.Join(t.TempDir(), "portal.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := repositories.NewRepositories(db)
	f := &auditFixture{db: db, repos: repos, srvs: NewServices(repos, zap.NewNop())}

	users := make([]*models.User, 0, 3)
	for _, u := range []struct {
		name string
		role models.Role
	}{{"admin", models.RoleAdmin}, {"other", models.RoleEmployee}, {"emp", models.RoleEmployee}} {
		user := &models.User{Username: u.name, PasswordHash: "x", Role: u.role}
		require.NoError(t, repos.Users.Create(context.Background(), user))
		users = append(users, user)
	}
	f.admin, f.emp = users[0], users[2]
	require.Equal(t, int64(3), f.emp.ID)
	return f
}

func (f *auditFixture) insertBill(t *testing.T, id int64, owner int64, amount string) {
	t.Helper()
	_, err := f.db.Exec(
		`INSERT INTO bills (id, bill_number, vendor_name, date, amount, status, entered_by, created_at)
		 VALUES (?, ?, 'Acme', '2024-05-01', ?, 'Pending', ?, ?)`,
		id, fmt.Sprintf("B-%d", id), amount, owner, time.Now().UTC())
	require.NoError(t, err)
}

func (f *auditFixture) insertAdvance(t *testing.T, id int64, employee int64) {
	t.Helper()
	_, err := f.db.Exec(
		`INSERT INTO advances (id, employee_id, advance_amount, date, remaining_due, entered_by, created_at)
		 VALUES (?, ?, '500.00', '2024-05-02', '250.00', ?, ?)`,
		id, employee, f.admin.ID, time.Now().UTC())
	require.NoError(t, err)
}

func (f *auditFixture) countAudit(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM audit_logs`).Scan(&n))
	return n
}

func billFields(amount string) models.Snapshot {
	return models.Snapshot{
		"bill_number": "B-42",
		"vendor_name": "Acme",
		"date":        "2024-05-01",
		"amount":      decimal.RequireFromString(amount),
		"status":      models.BillStatusPending,
	}
}

func TestMutate_BillUpdateIsVisibleInRecordHistory(t *testing.T) {
	ctx := context.Background()
	f := newAuditFixture(t)
	f.insertBill(t, 42, f.emp.ID, "100")

	ok, err := f.srvs.Interceptor.Mutate(ctx, Mutation{
		Schema:   models.BillSchema,
		RecordID: 42,
		Action:   models.ActionUpdate,
		Fields:   billFields("150"),
		ActorID:  f.admin.ID,
	})
	require.NoError(t, err)
	require.True(t, ok)

	history, err := f.srvs.Audit.GetByRecord(ctx, "bills", 42)
	require.NoError(t, err)
	require.Len(t, history, 1)

	entry := history[0]
	assert.Equal(t, models.ActionUpdate, entry.Action)
	assert.Equal(t, f.emp.ID, entry.UserID)
	assert.Equal(t, f.admin.ID, entry.ActorID)

	require.NotNil(t, entry.OldValues)
	require.NotNil(t, entry.NewValues)
	old, err := models.BillSchema.Decode(*entry.OldValues)
	require.NoError(t, err)
	updated, err := models.BillSchema.Decode(*entry.NewValues)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(old["amount"].(decimal.Decimal)))
	assert.True(t, decimal.NewFromInt(150).Equal(updated["amount"].(decimal.Decimal)))
	assert.NotContains(t, *entry.OldValues, "entered_by")
	assert.NotContains(t, *entry.OldValues, "created_at")
}

func TestMutate_AdvanceDeleteIsVisibleToEmployee(t *testing.T) {
	ctx := context.Background()
	f := newAuditFixture(t)
	f.insertAdvance(t, 7, f.emp.ID)

	ok, err := f.srvs.Interceptor.Mutate(ctx, Mutation{
		Schema:   models.AdvanceSchema,
		RecordID: 7,
		Action:   models.ActionDelete,
		ActorID:  f.admin.ID,
	})
	require.NoError(t, err)
	require.True(t, ok)

	entries, err := f.srvs.Audit.GetByUser(ctx, f.emp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionDelete, entries[0].Action)
	assert.Equal(t, "advances", entries[0].TableName)
	assert.Equal(t, int64(7), entries[0].RecordID)
	assert.Nil(t, entries[0].NewValues)

	require.NotNil(t, entries[0].OldValues)
	old, err := models.AdvanceSchema.Decode(*entries[0].OldValues)
	require.NoError(t, err)
	assert.Equal(t, f.emp.ID, old["employee_id"])
	assert.True(t, decimal.RequireFromString("250").Equal(old["remaining_due"].(decimal.Decimal)))

	_, err = f.repos.Records.GetByID(ctx, models.AdvanceSchema, 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMutate_MissingRecordWritesNothing(t *testing.T) {
	f := newAuditFixture(t)

	ok, err := f.srvs.Interceptor.Mutate(context.Background(), Mutation{
		Schema:   models.BillSchema,
		RecordID: 404,
		Action:   models.ActionDelete,
		ActorID:  f.admin.ID,
	})

	assert.False(t, ok)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Zero(t, f.countAudit(t))
}

func TestMutate_RejectsCreateAction(t *testing.T) {
	f := newAuditFixture(t)

	_, err := f.srvs.Interceptor.Mutate(context.Background(), Mutation{
		Schema:   models.BillSchema,
		RecordID: 1,
		Action:   "CREATE",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMutate_OneEntryPerMutationNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newAuditFixture(t)
	f.insertBill(t, 42, f.emp.ID, "100")
	f.insertAdvance(t, 7, f.emp.ID)

	amounts := []string{"110", "120", "130"}
	for _, a := range amounts {
		ok, err := f.srvs.Interceptor.Mutate(ctx, Mutation{
			Schema: models.BillSchema, RecordID: 42, Action: models.ActionUpdate,
			Fields: billFields(a), ActorID: f.admin.ID,
		})
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := f.srvs.Interceptor.Mutate(ctx, Mutation{
		Schema: models.AdvanceSchema, RecordID: 7, Action: models.ActionDelete, ActorID: f.admin.ID,
	})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, len(amounts)+1, f.countAudit(t))

	entries, err := f.srvs.Audit.GetByUser(ctx, f.emp.ID)
	require.NoError(t, err)
	require.Len(t, entries, len(amounts)+1)
	assert.Equal(t, models.ActionDelete, entries[0].Action)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
		assert.Greater(t, entries[i-1].ID, entries[i].ID)
	}

	others, err := f.srvs.Audit.GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestMutate_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	f := newAuditFixture(t)
	f.insertBill(t, 42, f.emp.ID, "0")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 1; i <= writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := f.srvs.Interceptor.Mutate(ctx, Mutation{
				Schema: models.BillSchema, RecordID: 42, Action: models.ActionUpdate,
				Fields: billFields(fmt.Sprintf("%d", n)), ActorID: f.admin.ID,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	history, err := f.srvs.Audit.GetByRecord(ctx, "bills", 42)
	require.NoError(t, err)
	require.Len(t, history, writers)

	// Oldest first: each entry's old values are exactly what the previous one wrote
	for i := len(history) - 2; i >= 0; i-- {
		assert.Equal(t, *history[i+1].NewValues, *history[i].OldValues)
	}

	current, err := f.repos.Records.GetByID(ctx, models.BillSchema, 42)
	require.NoError(t, err)
	latest, err := models.BillSchema.Decode(*history[0].NewValues)
	require.NoError(t, err)
	assert.True(t, models.BillSchema.Equal(latest, current.Fields))
}

func TestAuditService_UnknownTable(t *testing.T) {
	f := newAuditFixture(t)

	_, err := f.srvs.Audit.GetByRecord(context.Background(), "users", 1)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMutate_ReassignedAdvanceIsAttributedToPreviousOwner(t *testing.T) {
	ctx := context.Background()
	f := newAuditFixture(t)
	f.insertAdvance(t, 7, f.emp.ID)
	const newOwner = int64(2)

	ok, err := f.srvs.Interceptor.Mutate(ctx, Mutation{
		Schema:   models.AdvanceSchema,
		RecordID: 7,
		Action:   models.ActionUpdate,
		Fields: models.Snapshot{
			"employee_id":    newOwner,
			"advance_amount": decimal.RequireFromString("500"),
			"date":           "2024-05-02",
			"remaining_due":  decimal.RequireFromString("250"),
		},
		ActorID: f.admin.ID,
	})
	require.NoError(t, err)
	require.True(t, ok)

	previous, err := f.srvs.Audit.GetByUser(ctx, f.emp.ID)
	require.NoError(t, err)
	require.Len(t, previous, 1)
	updated, err := models.AdvanceSchema.Decode(*previous[0].NewValues)
	require.NoError(t, err)
	assert.Equal(t, newOwner, updated["employee_id"])

	// The new owner finds the change through the record history, not their own feed
	received, err := f.srvs.Audit.GetByUser(ctx, newOwner)
	require.NoError(t, err)
	assert.Empty(t, received)

	history, err := f.srvs.Audit.GetByRecord(ctx, "advances", 7)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
