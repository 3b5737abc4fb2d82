package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts (root)",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersSetRoleCmd())
	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			users, err := reviewSvc.ListUsers(cmd.Context(), token)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			out := cmd.OutOrStdout()
			if flagJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(users)
			}
			if len(users) == 0 {
				fmt.Fprintln(out, "No users found.")
				return nil
			}
			fmt.Fprintf(out, "%-26s  %-20s  %-30s  %s\n", "ID", "USERNAME", "EMAIL", "ROLE")
			fmt.Fprintf(out, "%-26s  %-20s  %-30s  %s\n", "--", "--------", "-----", "----")
			for _, u := range users {
				fmt.Fprintf(out, "%-26s  %-20s  %-30s  %s\n", u.ID, u.Username, u.Email, u.Role)
			}
			return nil
		},
	}
}

func newUsersSetRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <user_id> <role>",
		Short: "Change an account's role (user or admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if err := reviewSvc.SetUserRole(cmd.Context(), token, args[0], args[1]); err != nil {
				return fmt.Errorf("set role: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Role of %s set to %s.\n", args[0], args[1])
			return nil
		},
	}
}
