package cli

import (
	"errors"
	"fmt"

	"datavault360/internal/client"

	"github.com/spf13/cobra"
)

func loginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = a.prompt(cmd, "Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.prompt(cmd, "Password: "); err != nil {
					return err
				}
			}
			route, err := a.client.Gate.Login(ctx(cmd), username, password)
			if err != nil {
				return err
			}
			role, _ := a.client.Gate.CurrentRole()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s), home %s\n", username, role, route)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when empty)")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			route := a.client.Gate.Logout(ctx(cmd))
			fmt.Fprintf(cmd.OutOrStdout(), "Signed out, go to %s\n", route)
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the role of the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, ok := a.client.Gate.CurrentRole()
			if !ok {
				return errors.New("not signed in")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (home %s)\n", role, client.HomeRoute(role))
			return nil
		},
	}
}

func openCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open ROUTE",
		Short: "Resolve where a route lands for the stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.client.Gate.Guard(client.Route(args[0])))
			return nil
		},
	}
}

func requireRole(a *app, roles ...client.Role) error {
	role, ok := a.client.Gate.CurrentRole()
	if !ok {
		return errors.New("not signed in, run vaultctl login")
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("signed in as %s, this needs %v", role, roles)
}
