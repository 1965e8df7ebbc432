package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/models"
)

// Client talks to the portal API with a cookie session
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the portal at baseURL
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// Login starts a session and returns the logged-in user
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	form := models.LoginForm{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", form, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("login response without user")
	}
	return out.User, nil
}

// Logout ends the session
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// UserAuditLogs fetches the audit entries that affected the logged-in user, newest first
func (c *Client) UserAuditLogs(ctx context.Context) ([]models.AuditLogEntry, error) {
	var out struct {
		AuditLogs []models.AuditLogEntry `json:"auditLogs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/audit/user", nil, &out); err != nil {
		return nil, err
	}
	return out.AuditLogs, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%s %s: %s: %w", method, path, apiErr.Message, apperrors.ErrUnauthorized)
		}
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
