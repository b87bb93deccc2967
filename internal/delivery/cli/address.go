package cli

import (
	"fmt"

	"addressconv/internal/domain/entity"
	"addressconv/internal/usecase"

	"github.com/spf13/cobra"
)

func newSaveCmd(opts *options) *cobra.Command {
	var address, fromFormat string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Convert an address and store it under a new identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := entity.ParseFormat(fromFormat)
			if err != nil {
				return err
			}

			return opts.withUsecase(cmd.Context(), func(uc usecase.AddressUsecase) error {
				saved, err := uc.Save(cmd.Context(), []byte(address), from)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Saved address with ID: %s\n", saved.ID())

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "address as a JSON document")
	cmd.Flags().StringVarP(&fromFormat, "from-format", "f", "", "format of --address (french, iso20022)")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("from-format")

	return cmd
}

func newUpdateCmd(opts *options) *cobra.Command {
	var address, fromFormat string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a stored address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := entity.ParseFormat(fromFormat)
			if err != nil {
				return err
			}

			return opts.withUsecase(cmd.Context(), func(uc usecase.AddressUsecase) error {
				updated, err := uc.Update(cmd.Context(), args[0], []byte(address), from)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Updated address with ID: %s\n", updated.ID())

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "address as a JSON document")
	cmd.Flags().StringVarP(&fromFormat, "from-format", "f", "", "format of --address (french, iso20022)")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("from-format")

	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUsecase(cmd.Context(), func(uc usecase.AddressUsecase) error {
				if err := uc.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted address with ID: %s\n", args[0])

				return nil
			})
		},
	}
}

func newFetchCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch <id>",
		Short: "Print a stored address in the requested format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := entity.ParseFormat(format)
			if err != nil {
				return err
			}

			return opts.withUsecase(cmd.Context(), func(uc usecase.AddressUsecase) error {
				rendered, err := uc.FetchAs(cmd.Context(), args[0], to)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), rendered)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (french, iso20022)")
	_ = cmd.MarkFlagRequired("format")

	return cmd
}

func newConvertCmd(opts *options) *cobra.Command {
	var address, fromFormat, toFormat string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an address without storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := entity.ParseFormat(fromFormat)
			if err != nil {
				return err
			}
			to, err := entity.ParseFormat(toFormat)
			if err != nil {
				return err
			}

			return opts.withUsecase(cmd.Context(), func(uc usecase.AddressUsecase) error {
				rendered, err := uc.Convert(cmd.Context(), []byte(address), from, to)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), rendered)
			})
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "address as a JSON document")
	cmd.Flags().StringVar(&fromFormat, "from-format", "", "format of --address (french, iso20022)")
	cmd.Flags().StringVar(&toFormat, "to-format", "", "output format (french, iso20022)")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("from-format")
	_ = cmd.MarkFlagRequired("to-format")

	return cmd
}
