package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagFormsUser string
	flagFormTitle string
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Manage a user's capture forms",
}

var formsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's forms in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUserID(cmd.Context(), flagFormsUser)
		if err != nil {
			return err
		}

		forms, err := formService.List(cmd.Context(), userID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(forms)
		}

		rows := make([][]string, 0, len(forms))
		for _, f := range forms {
			rows = append(rows, []string{f.ID, f.Title, f.Headline, f.CreatedAt.Format(time.RFC3339)})
		}
		printTable([]string{"ID", "TITLE", "HEADLINE", "CREATED"}, rows)
		return nil
	},
}

var formsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a form from the default template",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUserID(cmd.Context(), flagFormsUser)
		if err != nil {
			return err
		}

		form, err := formService.Create(cmd.Context(), userID, flagFormTitle)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(form)
		}
		fmt.Printf("created form %q with id %s\n", form.Title, form.ID)
		return nil
	},
}

var formsDeleteCmd = &cobra.Command{
	Use:   "delete <form-id>",
	Short: "Delete a form; its leads are kept and marked consolidated",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUserID(cmd.Context(), flagFormsUser)
		if err != nil {
			return err
		}

		deleted, err := formService.Delete(cmd.Context(), userID, args[0])
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Printf("no form with id %s\n", args[0])
			return nil
		}
		fmt.Printf("deleted form %s\n", args[0])
		return nil
	},
}

func init() {
	formsCmd.PersistentFlags().StringVar(&flagFormsUser, "user", "", "User id or email (required)")
	formsCmd.MarkPersistentFlagRequired("user")

	formsCreateCmd.Flags().StringVar(&flagFormTitle, "title", "", "Internal label for the form")
	formsCreateCmd.MarkFlagRequired("title")

	formsCmd.AddCommand(formsListCmd, formsCreateCmd, formsDeleteCmd)
	rootCmd.AddCommand(formsCmd)
}
