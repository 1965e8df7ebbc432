package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/finportal/apperrors"
	"github.com/blogem/finportal/config"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/notifier"
)

var (
	watchURL      string
	watchUsername string
	watchPassword string
)

// watchIdleCheck is how often watch checks whether the poller gave up
var watchIdleCheck = time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log in as an employee and print alerts when an admin changes your records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, cmd.OutOrStdout(), cfg, logger, watchURL, watchUsername, watchPassword)
	},
}

// runWatch logs in, prints alerts until ctx is done and logs out again. It fails
// when the session stops being accepted.
func runWatch(ctx context.Context, out io.Writer, cfg *config.Config, logger *zap.Logger, baseURL, username, password string) error {
	client, err := notifier.NewClient(baseURL, 15*time.Second)
	if err != nil {
		return err
	}

	user, err := client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Logout(logoutCtx)
	}()

	if user.Role != models.RoleEmployee {
		fmt.Fprintf(out, "Logged in as %s (%s); notifications are only shown to employees\n", user.Username, user.Role)
		return nil
	}

	poller, err := notifier.NewPoller(client, notifier.NewTerminalSink(out), notifier.Options{
		Interval: cfg.PollInterval,
		Window:   cfg.PollWindow,
	}, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Watching audit log for %s every %s (Ctrl+C to stop)\n", user.Username, cfg.PollInterval)
	poller.Start(ctx, user.Role)
	defer poller.Stop()

	ticker := time.NewTicker(watchIdleCheck)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// The poller goes idle on its own when the session expires
			if poller.State() == notifier.StateIdle {
				return fmt.Errorf("session for %s is no longer valid: %w", user.Username, apperrors.ErrUnauthorized)
			}
		}
	}
}

func init() {
	watchCmd.Flags().StringVar(&watchURL, "url", "http://localhost:8080", "Portal base URL")
	watchCmd.Flags().StringVar(&watchUsername, "username", "", "Employee login name")
	watchCmd.Flags().StringVar(&watchPassword, "password", "", "Employee password")
	_ = watchCmd.MarkFlagRequired("username")
	_ = watchCmd.MarkFlagRequired("password")

	RootCmd.AddCommand(watchCmd)
}
