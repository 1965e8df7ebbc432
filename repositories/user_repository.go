package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

// UserRepository interface defines portal account database operations
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, password, role, created_at FROM users WHERE id = ?`
	return r.scanOne(ctx, query, id)
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password, role, created_at FROM users WHERE username = ?`
	return r.scanOne(ctx, query, username)
}

func (r *userRepository) scanOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %v: %w", arg, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("get user", err)
	}
	return &user, nil
}

// Create creates a new user; PasswordHash must already be hashed
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, password, role, created_at) VALUES (?, ?, ?, ?)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = utcNow()
	}

	result, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %s already exists: %w", user.Username, apperrors.ErrConflict)
		}
		return storageErr("create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("get inserted ID", err)
	}

	user.ID = id
	return nil
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, storageErr("count users", err)
	}
	return count, nil
}
