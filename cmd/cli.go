package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "tailoring/internal/adapters/in/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the tailoring CLI.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tailoring",
		Short:         "Tailoring order management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())

	return root
}

// Execute runs the CLI until the command finishes or the process receives SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start", "run"},
		Short:   "Run the HTTP service and the backlog jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := LoadConfig()
			logger, err := NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	shutdownTracing, err := InitTracing(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	gormDB, err := OpenDB(cfg)
	if err != nil {
		return err
	}

	root := NewCompositionRoot(cfg, gormDB, logger)

	e, err := httpin.NewEcho(ctx, root.CreateHTTPServer(), root.RouterConfig(), logger)
	if err != nil {
		return err
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("port", cfg.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serverErr:
		logger.Error("http server stopped", zap.Error(err))
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jobManager.StopAll()
	shutdownErr := errors.Join(
		e.Shutdown(stopCtx),
		root.Close(stopCtx),
		shutdownTracing(stopCtx),
	)
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		shutdownErr = errors.Join(shutdownErr, sqlDB.Close())
	}

	return errors.Join(err, shutdownErr)
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, mig *Migrator) error {
				if err := mig.Up(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			all, _ := cmd.Flags().GetBool("all")
			return withMigrator(cmd.Context(), func(ctx context.Context, mig *Migrator) error {
				if err := mig.Down(ctx, steps, all); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
				return nil
			})
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migration steps to rollback")
	downCmd.Flags().Bool("all", false, "Rollback all applied migrations")

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo customer, admin and tailor accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := LoadConfig()
			logger, err := NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			gormDB, err := OpenDB(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := gormDB.DB(); err == nil {
				defer sqlDB.Close()
			}

			users, err := NewSeeder(gormDB, logger).Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s  %s\n", u.Role, u.ID, u.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed data applied")
			return nil
		},
	}
}

func withMigrator(ctx context.Context, fn func(context.Context, *Migrator) error) error {
	cfg := LoadConfig()
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	mig, err := NewMigrator(cfg, logger)
	if err != nil {
		return err
	}
	defer mig.Close()

	return fn(ctx, mig)
}
