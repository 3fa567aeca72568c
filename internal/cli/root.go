package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/ward/internal/config"
	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/tui"
)

// RootOptions holds what the root command needs beyond its flags.
type RootOptions struct {
	// Program drives the navigator until the user quits.
	// Defaults to the terminal UI; tests substitute a scripted driver.
	Program func(ctx context.Context, nav *engine.Navigator) error
}

// NewRootCommand creates the ward command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Program: tui.Run})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ward",
		Short: "Ward - hospital records in the terminal",
		Long: `Ward manages patients, staff shifts, medical records and invoices
from a keyboard-driven terminal interface backed by a local SQLite file.

On first start an empty database gets a default account (root/root).

Every flag can also be set from the environment with a WARD_ prefix,
for example WARD_DB=/var/lib/ward/ward.db.

Example:
  ward --db ./ward.db
  ward --db ./ward.db --log-file ./ward.log --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(opts, cmd)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}
