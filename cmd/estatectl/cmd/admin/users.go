package admin

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	usersFilter string
	usersWhere  []string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List user accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathAdmin, func() error {
			return UsersView(cmd)
		})
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role <user-id> <role>",
	Short: "Change the role of an account",
	Long:  `Assigns admin, agent or user (or 1, 2, 3) to an account.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathAdmin, func() error {
			id, err := view.ParseID(args[0], "user")
			if err != nil {
				return err
			}
			role, err := sdk.RoleFromName(args[1])
			if err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			if err := client.SetUserRole(ctx, id, role); err != nil {
				return fmt.Errorf("failed to set role of user %d: %w", id, err)
			}
			pterm.Success.Printf("User %d is now %s\n", id, role)
			return nil
		})
	},
}

func init() {
	usersCmd.Flags().StringVar(&usersFilter, "filter", "", "bexpr filter expression (e.g. role_id == 2)")
	usersCmd.Flags().StringArrayVar(&usersWhere, "where", nil, "Filter by field equality (key=value). Repeatable")
}

// UsersView is the landing view of the admin route.
func UsersView(cmd *cobra.Command) error {
	filter, err := view.ListFilter(usersFilter, usersWhere)
	if err != nil {
		return err
	}

	client, err := view.SDKClient(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := view.Timeout(cmd)
	defer cancel()

	users, err := client.ListUsers(ctx, sdk.ListOptions{Filter: filter})
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		view.Empty("users")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{view.Itoa(u.ID), u.Username, u.Email, u.RoleID.String()})
	}
	return view.Table([]string{"ID", "USERNAME", "EMAIL", "ROLE"}, rows)
}
