package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

// newFakePortal serves the login, logout and user audit endpoints with a single session cookie
func newFakePortal(t *testing.T, entries []models.AuditLogEntry) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, status int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	loggedIn := func(r *http.Request) bool {
		c, err := r.Cookie("portal_session")
		return err == nil && c.Value == "s1"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var form models.LoginForm
		_ = json.NewDecoder(r.Body).Decode(&form)
		if form.Password != "password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized", "message": "Invalid username or password"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "portal_session", Value: "s1", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Login successful",
			"user":    models.User{ID: 3, Username: form.Username, Role: models.RoleEmployee},
		})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "portal_session", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
	})
	mux.HandleFunc("/api/audit/user", func(w http.ResponseWriter, r *http.Request) {
		if !loggedIn(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized", "message": "Authentication required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"auditLogs": entries})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_LoginAndFetchAuditLogs(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	srv := newFakePortal(t, []models.AuditLogEntry{
		{ID: 9, UserID: 3, ActorID: 1, Action: models.ActionUpdate, TableName: "bills", RecordID: 42, Timestamp: ts},
	})

	c, err := NewClient(srv.URL+"/", 5*time.Second)
	require.NoError(t, err)

	user, err := c.Login(ctx, "emp", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, models.RoleEmployee, user.Role)

	entries, err := c.UserAuditLogs(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].RecordID)
	assert.True(t, ts.Equal(entries[0].Timestamp))

	require.NoError(t, c.Logout(ctx))

	_, err = c.UserAuditLogs(ctx)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestClient_WrongPassword(t *testing.T) {
	srv := newFakePortal(t, nil)
	c, err := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "emp", "nope")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestClient_ServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","message":"Failed to retrieve audit logs"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = c.UserAuditLogs(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "Failed to retrieve audit logs")
}
