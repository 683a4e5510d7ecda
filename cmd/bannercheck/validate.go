package main

import (
	"errors"

	"github.com/spf13/cobra"

	"bannerval/internal/domain"
	"bannerval/internal/wizard"
)

func newValidateCmd(opts *globalOptions, setup func(*cobra.Command) (*wizard.Pipeline, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a banner against the accepted sizes and formats",
		Long: `Prints the validation result as JSON. The command exits with status 1 when the
banner does not match any accepted size and format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd)
			if err != nil {
				return err
			}
			f, err := readBanner(args[0])
			if err != nil {
				return err
			}
			res, err := p.Validate(cmd.Context(), f, wizard.ResolveLocale(opts.locale))
			if err != nil && !errors.Is(err, domain.ErrFormatOrDimensionMismatch) {
				return err
			}
			if werr := writeJSON(cmd.OutOrStdout(), res); werr != nil {
				return werr
			}
			if err != nil {
				return errRejected
			}
			return nil
		},
	}
}
