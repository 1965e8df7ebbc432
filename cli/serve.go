package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/finportal/authenticator"
	"github.com/blogem/finportal/config"
	"github.com/blogem/finportal/controllers"
	"github.com/blogem/finportal/database"
	"github.com/blogem/finportal/repositories"
	"github.com/blogem/finportal/server"
	"github.com/blogem/finportal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg, logger, nil)
	},
}

// runServer serves the portal until ctx is done and then shuts down gracefully.
// onListen, when set, receives the bound address once the listener is open.
func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger, onListen func(addr string)) error {
	db, err := database.InitializeDatabase(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	srvs := services.NewServices(repositories.NewRepositories(db), logger)

	var sso authenticator.Provider
	if cfg.SSOEnabled() {
		sso, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDCDomain,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize SSO provider: %w", err)
		}
	} else {
		logger.Info("SSO disabled, only password login is available")
	}

	router, err := server.NewRouter(server.Options{
		Config:      cfg,
		Controllers: controllers.NewControllers(srvs, sso, logger),
		DB:          db,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Portal starting",
			zap.String("addr", listener.Addr().String()),
			zap.String("env", cfg.AppEnv),
			zap.String("database", cfg.DatabasePath))
		errCh <- httpServer.Serve(listener)
	}()
	if onListen != nil {
		onListen(listener.Addr().String())
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
