package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bootlang/internal/buildinfo"
	"github.com/dmitrijs2005/bootlang/internal/client/config"
	"github.com/dmitrijs2005/bootlang/internal/client/session"
	"github.com/dmitrijs2005/bootlang/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bootlang",
		Short: "Boot_Lang is a terminal client for the Boot_Lang scaffold backend",
		Long: `Boot_Lang lets you sign in to the scaffold backend, manage users, build
POCs through the chat agent and work with the generated task manager.`,
		Example: `bootlang
  bootlang --api-url http://localhost:8000 --log-level debug
  bootlang -c bootlang.yaml whoami`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.Run(ctx)
				return nil
			})
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the signed-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, a *App) error { return a.Whoami(ctx, args) })
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Clear the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, a *App) error { return a.Logout(ctx, args) })
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root
}

// withApp loads the config from cmd's flags, builds the App and closes it
// after fn returns.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) (err error) {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	a, err := NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	a.out = cmd.OutOrStdout()
	a.reader.Reset(cmd.InOrStdin())
	return fn(session.WithAuth(ctx, a.auth), a)
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}
