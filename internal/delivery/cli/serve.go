package cli

import (
	"fmt"

	"addressconv/internal/app"
	"addressconv/internal/errors"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			application := fx.New(
				app.Module(cfg),
				app.ServerModule(),
				fx.NopLogger,
			)
			if err := application.Err(); err != nil {
				return err
			}

			// Run blocks until SIGINT/SIGTERM and stops the app.
			application.Run()

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "addressconv %s\n", version)
		},
	}
}
