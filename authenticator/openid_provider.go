package authenticator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OpenIDConfig holds the OIDC_* settings
type OpenIDConfig struct {
	// Domain of the issuer; discovery runs against https://{Domain}/
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	// HTTPClient is used for discovery, key fetches and the code exchange. Optional.
	HTTPClient *http.Client
}

func (c OpenIDConfig) validate() error {
	missing := []string{}
	for _, f := range []struct{ name, value string }{
		{"domain", c.Domain},
		{"client ID", c.ClientID},
		{"client secret", c.ClientSecret},
		{"callback URL", c.CallbackURL},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		return errors.New(strings.Join(missing, ", "))
	}
	return nil
}

func (c OpenIDConfig) issuer() string {
	return "https://" + strings.TrimSuffix(c.Domain, "/") + "/"
}

// openIDProvider signs portal users in through an OpenID Connect issuer
type openIDProvider struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
	client   *http.Client
}

// NewOpenIDProvider discovers the issuer and prepares the code flow
func NewOpenIDProvider(ctx context.Context, cfg OpenIDConfig) (Provider, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.HTTPClient != nil {
		ctx = oidc.ClientContext(ctx, cfg.HTTPClient)
	}
	issuer, err := oidc.NewProvider(ctx, cfg.issuer())
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC issuer %s: %w", cfg.Domain, err)
	}

	return &openIDProvider{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     issuer.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: issuer.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		client:   cfg.HTTPClient,
	}, nil
}

func (p *openIDProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *openIDProvider) Identify(ctx context.Context, code string) (Claims, error) {
	if code == "" {
		return nil, ErrMissingCode
	}
	if p.client != nil {
		ctx = oidc.ClientContext(ctx, p.client)
	}

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response has no id_token")
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	claims := Claims{}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to read ID token claims: %w", err)
	}
	return claims, nil
}
