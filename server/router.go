package server

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/finportal/config"
	"github.com/blogem/finportal/controllers"
	authmiddleware "github.com/blogem/finportal/middleware"
	"github.com/blogem/finportal/models"
)

// Options are the dependencies of the HTTP router
type Options struct {
	Config      *config.Config
	Controllers *controllers.Controllers
	DB          *sql.DB
	Logger      *zap.Logger
}

// NewRouter configures all routes
func NewRouter(opts Options) (*chi.Mux, error) {
	cfg := opts.Config
	ctrl := opts.Controllers

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(authmiddleware.RequestLogger(opts.Logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))
	r.Use(authmiddleware.SecureHeaders(cfg.UseHTTPS))

	// Session middleware
	lifetime := int64(cfg.SessionLifetime / time.Second)
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "portal_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     lifetime,
		Maxlifetime:    lifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.MutationLogger(opts.Logger.Named("access")))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", healthHandler(opts.DB))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authmiddleware.LoginRateLimit(cfg.LoginRateLimit, time.Minute)).Post("/login", ctrl.Auth.Login)
			r.Post("/logout", ctrl.Auth.Logout)
			r.Get("/sso/login", ctrl.Auth.SSOLogin)
			r.Get("/sso/callback", ctrl.Auth.SSOCallback)
			r.With(authmiddleware.RequireAuth).Get("/me", ctrl.Auth.Me)
		})

		// PROTECTED ROUTES (authentication required)
		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireAuth)

			for _, schema := range models.Schemas() {
				rc := ctrl.Records[schema.Table]
				r.Route("/"+schema.Table, func(r chi.Router) {
					r.Post("/", rc.Create)
					r.Get("/", rc.List)
					r.Get("/{id}", rc.Get)
					r.Put("/{id}", rc.Update)
					r.Delete("/{id}", rc.Delete)
				})
			}

			r.Route("/audit", func(r chi.Router) {
				r.Get("/user", ctrl.Audit.UserLogs)
				r.Get("/{table_name}/{record_id}", ctrl.Audit.RecordLogs)
			})
		})
	})

	return r, nil
}

// healthHandler reports whether the database answers
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, state := http.StatusOK, "healthy"
		if err := db.PingContext(r.Context()); err != nil {
			status, state = http.StatusServiceUnavailable, "unhealthy"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": state, "service": "finportal"})
	}
}
