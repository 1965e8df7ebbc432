package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogem/finportal/database"
	"github.com/blogem/finportal/models"
	"github.com/blogem/finportal/repositories"
	"github.com/blogem/finportal/services"
)

var (
	userName     string
	userPassword string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage portal accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a portal account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		db, err := database.InitializeDatabase(cmd.Context(), cfg.DatabasePath, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		srvs := services.NewServices(repositories.NewRepositories(db), logger)
		user, err := srvs.Auth.CreateUser(cmd.Context(), userName, userPassword, models.Role(userRole))
		if err != nil {
			return fmt.Errorf("failed to add user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added user %s (id %d, role %s)\n", user.Username, user.ID, user.Role)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userName, "username", "", "Login name")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "Password (at least 8 characters)")
	userAddCmd.Flags().StringVar(&userRole, "role", string(models.RoleEmployee), "admin or employee")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
	RootCmd.AddCommand(userCmd)
}
