package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/finportal/config"
	"github.com/blogem/finportal/logging"
)

// Version is set at build time
var Version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "finportal",
	Version: Version,
	Short:   "Company finance portal with per-record audit history",
	Long: `finportal serves the company finance API (transactions, bills, advances)
and records every admin update or delete in an append-only audit log.
Employees can watch that log for changes to their own records.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// bootstrap loads configuration and builds the logger every command starts with
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
