package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/finportal/apperrors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func useTempDatabase(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "portal.db"))
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "error")
}

func TestHelp(t *testing.T) {
	out, err := run(t, "--help")

	require.NoError(t, err)
	for _, sub := range []string{"serve", "migrate", "user", "watch"} {
		assert.Contains(t, out, sub)
	}
}

func TestMigrate(t *testing.T) {
	useTempDatabase(t)

	out, err := run(t, "migrate")

	require.NoError(t, err)
	assert.Contains(t, out, "Schema version 3 (dirty: false)")
}

func TestUserAdd(t *testing.T) {
	useTempDatabase(t)

	out, err := run(t, "user", "add", "--username", "alice", "--password", "password123", "--role", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Added user alice (id 1, role admin)")

	_, err = run(t, "user", "add", "--username", "alice", "--password", "password123", "--role", "admin")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = run(t, "user", "add", "--username", "bob", "--password", "short", "--role", "employee")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = run(t, "user", "add", "--username", "bob", "--password", "password123", "--role", "owner")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
