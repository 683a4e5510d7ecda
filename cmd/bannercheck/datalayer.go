package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bannerval/internal/datalayer"
	"bannerval/internal/domain"
	"bannerval/internal/wizard"
)

type datalayerOptions struct {
	page     string
	location string
	format   string
	out      string
}

func newDatalayerCmd(opts *globalOptions, setup func(*cobra.Command) (*wizard.Pipeline, error)) *cobra.Command {
	var dl datalayerOptions
	cmd := &cobra.Command{
		Use:   "datalayer FILE",
		Short: "Validate a banner and print one data layer per brand",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch dl.format {
			case "json", "text":
			case "xlsx", "zip":
				if dl.out == "" {
					return fmt.Errorf("--out is required for %s", dl.format)
				}
			default:
				return fmt.Errorf("unknown format %q: want json, text, xlsx or zip", dl.format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd)
			if err != nil {
				return err
			}
			f, err := readBanner(args[0])
			if err != nil {
				return err
			}

			wz := wizard.New(p)
			sess := wizard.NewStore(1, time.Hour).Create()
			st, err := wz.Upload(cmd.Context(), sess, f, wizard.ResolveLocale(opts.locale))
			if err != nil {
				return err
			}
			if st.Step == wizard.StepError {
				fmt.Fprintln(cmd.ErrOrStderr(), st.Validation.Error)
				return errRejected
			}
			st, err = wz.Submit(sess, domain.InteractionInput{PageName: dl.page, LocationElement: dl.location})
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), st.Records, dl)
		},
	}
	cmd.Flags().StringVar(&dl.page, "page", "", "page name, as typed on the interaction step")
	cmd.Flags().StringVar(&dl.location, "location", "", "banner location on the page")
	cmd.Flags().StringVar(&dl.format, "format", "json", "output format: json, text, xlsx or zip")
	cmd.Flags().StringVarP(&dl.out, "out", "o", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("page")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func writeRecords(stdout io.Writer, records []domain.DataLayerRecord, dl datalayerOptions) error {
	w := stdout
	if dl.out != "" {
		file, err := os.Create(dl.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", dl.out, err)
		}
		defer file.Close()
		w = file
	}

	switch dl.format {
	case "xlsx":
		return datalayer.WriteXLSX(w, records)
	case "zip":
		return datalayer.WriteZip(w, records)
	case "text":
		text, err := datalayer.Text(records)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	default:
		return writeJSON(w, records)
	}
}
