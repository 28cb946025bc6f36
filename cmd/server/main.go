package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"pms/internal/app/server"
	"pms/internal/platform/config"
	"pms/internal/platform/db"
)

const (
	addrFlag   = "addr"
	policyFlag = "goal-status-policy"
)

var runServer = server.Run

// newServeFlags builds the serve flags. They are persistent on the root so
// "pms --addr" and "pms serve --addr" share one definition.
func newServeFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		addrFlag: &cobraflags.StringFlag{
			Name:       addrFlag,
			Value:      "",
			Usage:      "Listen address, overrides APP_ADDR",
			Persistent: true,
		},
		policyFlag: &cobraflags.StringFlag{
			Name:       policyFlag,
			Value:      "",
			Usage:      "Goal status policy (permissive, strict), overrides GOAL_STATUS_POLICY",
			Persistent: true,
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pms",
		Short:         "Performance management tracker",
		Long:          `Serve the performance management API or administer its database and users.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serveFlags := newServeFlags()
	cobraflags.RegisterMap(rootCmd, serveFlags)
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return serveCommand(cmd, serveFlags)
	}

	rootCmd.AddCommand(newServeCommand(rootCmd.RunE))
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newUsersCommand())
	return rootCmd
}

func newServeCommand(run func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  run,
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
				if err := db.Migrate(ctx, pool); err != nil {
					return fmt.Errorf("migrations: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users when none exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
				inserted, err := db.Seed(ctx, pool)
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				if inserted {
					fmt.Fprintln(cmd.OutOrStdout(), "demo users inserted")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "users already present, nothing to seed")
				}
				return nil
			})
		},
	}
}

func serveCommand(cmd *cobra.Command, serveFlags map[string]cobraflags.Flag) error {
	cfg := config.Load()
	if addr := serveFlags[addrFlag].GetString(); addr != "" {
		cfg.Addr = addr
	}
	if policy := serveFlags[policyFlag].GetString(); policy != "" {
		cfg.GoalStatusPolicy = policy
	}
	server.NewLogger(cfg)
	return runServer(cmd.Context(), cfg)
}

// withPool runs fn against a pool built from the environment configuration.
func withPool(ctx context.Context, fn func(context.Context, *db.Pool) error) error {
	cfg := config.Load()
	server.NewLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	return fn(ctx, pool)
}
