package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"pms/internal/domain/users"
	"pms/internal/platform/db"
)

const (
	roleFlag      = "role"
	nameFlag      = "name"
	managerIDFlag = "manager-id"
	idFlag        = "id"
)

var listFlags = map[string]cobraflags.Flag{
	roleFlag: &cobraflags.StringFlag{
		Name:  roleFlag,
		Value: "",
		Usage: "Role to list (Manager, Employee). Lists both when empty",
	},
}

var addFlags = map[string]cobraflags.Flag{
	nameFlag: &cobraflags.StringFlag{
		Name:  nameFlag,
		Value: "",
		Usage: "Display name (required)",
	},
	roleFlag: &cobraflags.StringFlag{
		Name:  roleFlag,
		Value: "",
		Usage: "Role of the new user: Manager or Employee (required)",
	},
	managerIDFlag: &cobraflags.StringFlag{
		Name:  managerIDFlag,
		Value: "",
		Usage: "Id of the employee's manager",
	},
}

var deleteFlags = map[string]cobraflags.Flag{
	idFlag: &cobraflags.StringFlag{
		Name:  idFlag,
		Value: "",
		Usage: "Id of the user to delete, together with their goals, tasks and feedback (required)",
	},
}

func newUsersCommand() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users out of band",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users by role",
		RunE:  listUsersCommand,
	}
	cobraflags.RegisterMap(listCmd, listFlags)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE:  addUserCommand,
	}
	cobraflags.RegisterMap(addCmd, addFlags)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user and everything they own",
		RunE:  deleteUserCommand,
	}
	cobraflags.RegisterMap(deleteCmd, deleteFlags)

	usersCmd.AddCommand(listCmd, addCmd, deleteCmd)
	return usersCmd
}

func listUsersCommand(cmd *cobra.Command, _ []string) error {
	roles := users.Roles
	if value := listFlags[roleFlag].GetString(); value != "" {
		role, err := users.ParseRole(value)
		if err != nil {
			return err
		}
		roles = []users.Role{role}
	}

	return withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
		svc := users.NewService(users.NewStore(pool))
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tROLE\tMANAGER")
		for _, role := range roles {
			list, err := svc.ListByRole(ctx, role)
			if err != nil {
				return err
			}
			for _, u := range list {
				manager := "-"
				if u.ManagerID != nil {
					manager = strconv.FormatInt(*u.ManagerID, 10)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, manager)
			}
		}
		return tw.Flush()
	})
}

func addUserCommand(cmd *cobra.Command, _ []string) error {
	name := addFlags[nameFlag].GetString()
	role, err := users.ParseRole(addFlags[roleFlag].GetString())
	if err != nil {
		return err
	}

	var managerID *int64
	if value := addFlags[managerIDFlag].GetString(); value != "" {
		id, err := parseID(managerIDFlag, value)
		if err != nil {
			return err
		}
		managerID = &id
	}

	return withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
		id, err := users.NewService(users.NewStore(pool)).Create(ctx, name, role, managerID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s %q with id %d\n", role, name, id)
		return nil
	})
}

func deleteUserCommand(cmd *cobra.Command, _ []string) error {
	id, err := parseID(idFlag, deleteFlags[idFlag].GetString())
	if err != nil {
		return err
	}

	return withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
		if err := users.NewService(users.NewStore(pool)).Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted user %d\n", id)
		return nil
	})
}

func parseID(flag, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("--%s must be a positive integer", flag)
	}
	return id, nil
}
