package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/capitaoleads/leadstore-go/internal/model"
)

var (
	flagLeadsUser    string
	flagLeadForm     string
	flagLeadName     string
	flagLeadEmail    string
	flagLeadWhatsapp string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Manage a user's captured leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's leads, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUserID(cmd.Context(), flagLeadsUser)
		if err != nil {
			return err
		}

		leads, err := leadService.List(cmd.Context(), userID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(leads)
		}

		rows := make([][]string, 0, len(leads))
		for _, l := range leads {
			rows = append(rows, []string{l.ID, l.FormID, l.Name, l.Email, l.Whatsapp, l.CapturedAt.Format(time.RFC3339)})
		}
		printTable([]string{"ID", "FORM", "NAME", "EMAIL", "WHATSAPP", "CAPTURED"}, rows)
		return nil
	},
}

var leadsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a lead as if submitted through a form",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUserID(cmd.Context(), flagLeadsUser)
		if err != nil {
			return err
		}

		lead, err := leadService.Save(cmd.Context(), userID, flagLeadForm, model.LeadInput{
			Name:     flagLeadName,
			Email:    flagLeadEmail,
			Whatsapp: flagLeadWhatsapp,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(lead)
		}
		fmt.Printf("captured lead %s\n", lead.ID)
		return nil
	},
}

var leadsDeleteCmd = &cobra.Command{
	Use:   "delete <lead-id>...",
	Short: "Delete leads by id; unknown ids are ignored",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := resolveUserID(cmd.Context(), flagLeadsUser)
		if err != nil {
			return err
		}

		removed, err := leadService.DeleteMany(cmd.Context(), userID, args)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d lead(s)\n", removed)
		return nil
	},
}

func init() {
	leadsCmd.PersistentFlags().StringVar(&flagLeadsUser, "user", "", "User id or email (required)")
	leadsCmd.MarkPersistentFlagRequired("user")

	leadsAddCmd.Flags().StringVar(&flagLeadForm, "form", "", "Form id the lead came through")
	leadsAddCmd.Flags().StringVar(&flagLeadName, "name", "", "Lead name")
	leadsAddCmd.Flags().StringVar(&flagLeadEmail, "email", "", "Lead email")
	leadsAddCmd.Flags().StringVar(&flagLeadWhatsapp, "whatsapp", "", "Lead WhatsApp number")
	leadsAddCmd.MarkFlagRequired("form")
	leadsAddCmd.MarkFlagRequired("name")

	leadsCmd.AddCommand(leadsListCmd, leadsAddCmd, leadsDeleteCmd)
	rootCmd.AddCommand(leadsCmd)
}
