package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <name> <email> <password>",
	Short: "Register a new user (provisions their first form)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := authService.Register(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("registering user: %w", err)
		}

		if flagJSON {
			return printJSON(user)
		}
		fmt.Printf("registered %s (%s) with id %s\n", user.Name, user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
