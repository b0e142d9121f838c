package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Provision the administrator account if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authService.SeedAdmin(cmd.Context(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return fmt.Errorf("seeding admin: %w", err)
		}
		fmt.Printf("admin account ready: %s\n", cfg.AdminEmail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedAdminCmd)
}
