package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := authService.Users(cmd.Context())
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(users)
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{u.ID, u.Name, u.Email, u.CreatedAt.Format(time.RFC3339)})
		}
		printTable([]string{"ID", "NAME", "EMAIL", "CREATED"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
