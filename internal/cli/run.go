package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/ward/internal/auth"
	"github.com/roach88/ward/internal/config"
	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/logging"
	"github.com/roach88/ward/internal/screens"
	"github.com/roach88/ward/internal/store"
	"github.com/roach88/ward/internal/validate"
)

func runApp(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	logger, logCloser := logging.New(cfg)
	slog.SetDefault(logger)
	defer func() {
		if closeErr := logCloser.Close(); closeErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error closing log file: %v\n", closeErr)
		}
	}()

	slog.Info("opening database", "path", cfg.DB)
	st, err := store.Open(cfg.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database ready")

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	svc := auth.NewService(st, auth.WithCost(cfg.BcryptCost))
	seeded, err := svc.EnsureBootstrap(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to seed default account", err)
	}
	if seeded {
		fmt.Fprintf(cmd.ErrOrStderr(), "Created default account %s/%s.\n",
			auth.BootstrapUsername, auth.BootstrapPassword)
	}

	env := engine.Env{
		Store: st,
		Auth:  svc,
		Rules: validate.NewRules(cfg.PhoneRegion, st),
	}
	nav := engine.NewNavigator(env, screens.NewLogin)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	slog.Info("ward starting", "db", cfg.DB, "region", cfg.PhoneRegion)
	if err := opts.Program(ctx, nav); err != nil {
		return WrapExitError(ExitFailure, "terminal error", err)
	}

	slog.Info("ward stopped", "dispatched", nav.Seq())
	return nil
}
