// Package cli implements the addressconv command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"addressconv/config"
	"addressconv/internal/app"
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/domain/repository"
	"addressconv/internal/errors"
	"addressconv/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// Exit codes returned by the binary.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitConversion = 3
	ExitNotFound   = 4
)

var version = "dev"

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// options holds the persistent flags.
type options struct {
	configDir string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "addressconv",
		Short: "Convert postal addresses between NF Z10-011 and ISO 20022",
		Long: `addressconv converts French NF Z10-011 postal addresses to ISO 20022
structured postal addresses and back, and keeps converted addresses under a
stable identifier.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configDir, "config", "c", "", "directory holding config.yaml")

	rootCmd.AddCommand(newSaveCmd(opts))
	rootCmd.AddCommand(newUpdateCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newFetchCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return ExitCode(err)
	}

	return ExitOK
}

// ExitCode maps an error to the exit code of the binary.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		return ExitValidation
	}
	if _, ok := errors.AsType[*domainerrors.ConversionError](err); ok {
		return ExitConversion
	}
	if errors.Is(err, repository.ErrAddressNotFound) {
		return ExitNotFound
	}

	return ExitFailure
}

func (o *options) loadConfig() (*config.Config, error) {
	if o.configDir == "" {
		return config.Load()
	}

	return config.Load(o.configDir)
}

// withUsecase starts the application graph, runs fn and stops the graph again.
func (o *options) withUsecase(ctx context.Context, fn func(usecase.AddressUsecase) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	var uc usecase.AddressUsecase
	application := fx.New(
		app.Module(cfg),
		fx.Populate(&uc),
		fx.NopLogger,
	)
	if err := application.Err(); err != nil {
		return err
	}

	if err := application.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		_ = application.Stop(context.WithoutCancel(ctx))
	}()

	return fn(uc)
}

func printJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
