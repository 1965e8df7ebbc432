package authenticator

import (
	"context"
	"errors"
)

// ErrMissingCode is returned when the identity provider redirected back without a code
var ErrMissingCode = errors.New("authorization code is missing")

// Claims are the verified ID token claims of the person signing in
type Claims map[string]interface{}

// UsernameCandidates returns the claims that may name a portal account, most specific first
func (c Claims) UsernameCandidates() []string {
	var out []string
	for _, key := range []string{"preferred_username", "nickname", "email"} {
		if v, ok := c[key].(string); ok && v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Subject returns the provider's stable user id
func (c Claims) Subject() string {
	sub, _ := c["sub"].(string)
	return sub
}

// Provider runs the authorization code flow against an identity provider.
// Portal accounts are never created from SSO; the claims only select an existing one.
type Provider interface {
	// AuthCodeURL is where the browser is sent to sign in; state comes back on the callback
	AuthCodeURL(state string) string
	// Identify redeems the callback code and returns the verified ID token claims
	Identify(ctx context.Context, code string) (Claims, error)
}
