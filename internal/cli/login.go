package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			if username == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Username: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read username: %w", err)
				}
				username = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			sess, err := authSvc.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			path, err := saveCredentials(credentials{Token: sess.Token, Username: sess.User.Username})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\nCredentials saved to %s\n",
				sess.User.Username, sess.User.Role, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (prompted if omitted)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := clearCredentials(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}

			sess, err := authSvc.Restore(cmd.Context(), token)
			if err != nil {
				return fmt.Errorf("session expired, run: resourcectl login")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\nEmail:    %s\nRole:     %s\n",
				sess.User.Username, sess.User.Email, sess.User.Role)
			return nil
		},
	}
}
