package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/blogem/finportal/database"
)

// TxRepositories are repositories bound to one open transaction
type TxRepositories struct {
	Records RecordRepository
	Audit   AuditRepository
}

// UnitOfWork runs a function against repositories that share a single transaction.
// The transaction commits only if fn returns nil.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

type sqliteUnitOfWork struct {
	db  *sql.DB
	now func() time.Time
}

// NewUnitOfWork creates a unit of work over db
func NewUnitOfWork(db *sql.DB) UnitOfWork {
	return &sqliteUnitOfWork{db: db, now: utcNow}
}

// NewUnitOfWorkWithClock creates a unit of work whose audit entries are stamped using now
func NewUnitOfWorkWithClock(db *sql.DB, now func() time.Time) UnitOfWork {
	return &sqliteUnitOfWork{db: db, now: now}
}

// Within opens a transaction, hands tx-bound repositories to fn and commits on success
func (u *sqliteUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	return database.WithTx(ctx, u.db, func(tx *sql.Tx) error {
		return fn(ctx, TxRepositories{
			Records: NewRecordRepository(tx),
			Audit:   NewAuditRepositoryWithClock(tx, u.now),
		})
	})
}
