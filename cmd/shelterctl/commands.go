package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelter-backend/internal/domains/auth"
	"shelter-backend/pkg/container"
	"shelter-backend/pkg/logger"
)

// migrateCmd tạo schema, idempotent
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create database tables",
	RunE:  runMigrate,
}

var createUserOpts struct {
	username string
	password string
	name     string
	roles    []string
}

// createUserCmd thêm tài khoản đăng nhập
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Add a login account",
	Long: `Add a login account with a bcrypt-hashed password.

Example:
  shelterctl create-user --username alice --password s3cretpass --role ROLE_ADMIN --role ROLE_USER`,
	RunE: runCreateUser,
}

func init() {
	f := createUserCmd.Flags()
	f.StringVar(&createUserOpts.username, "username", "", "login name")
	f.StringVar(&createUserOpts.password, "password", "", "plain password, 8-72 characters")
	f.StringVar(&createUserOpts.name, "name", "", "friendly name shown after login")
	f.StringSliceVar(&createUserOpts.roles, "role", nil, "role to grant, repeatable (default ROLE_USER)")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := container.NewCLIContainer(ctx, appConfig)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	if err := c.DB.Migrate(ctx); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
	return nil
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := container.NewCLIContainer(ctx, appConfig)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	user, err := c.AuthService.CreateUser(ctx, auth.CreateUserRequest{
		Username:     createUserOpts.username,
		Password:     createUserOpts.password,
		FriendlyName: createUserOpts.name,
		Roles:        createUserOpts.roles,
	})
	if err != nil {
		return err
	}

	logger.Info("User created", map[string]interface{}{"id": user.ID, "roles": user.Roles})
	fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id=%d)\n", user.Username, user.ID)
	return nil
}
