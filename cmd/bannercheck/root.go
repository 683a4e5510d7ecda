package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bannerval/internal/catalog"
	"bannerval/internal/infra"
	"bannerval/internal/providers/extract"
	"bannerval/internal/wizard"
)

// errRejected marks a banner that failed validation. The reason is already
// printed, so main only sets the exit code.
var errRejected = errors.New("banner rejected")

type globalOptions struct {
	catalogPath string
	locale      string
	verbose     bool
}

// pipelineFactory builds the validation pipeline once flags are parsed.
type pipelineFactory func(ctx context.Context, opts globalOptions, logger *infra.Logger) (*wizard.Pipeline, error)

func newRootCmd(build pipelineFactory) *cobra.Command {
	var opts globalOptions
	root := &cobra.Command{
		Use:           "bannercheck",
		Short:         "Validate marketing banners and generate their data layers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (default: CATALOG_PATH or the built-in catalog)")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "pt", "message language: pt or en")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline details to stderr")

	setup := func(cmd *cobra.Command) (*wizard.Pipeline, error) {
		logger := infra.NewCLILogger(cmd.ErrOrStderr(), opts.verbose)
		return build(cmd.Context(), opts, &logger)
	}

	root.AddCommand(newValidateCmd(&opts, setup), newDatalayerCmd(&opts, setup))
	return root
}

// configuredPipeline wires the pipeline from the environment, as the API
// does.
func configuredPipeline(ctx context.Context, opts globalOptions, logger *infra.Logger) (*wizard.Pipeline, error) {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return nil, err
	}
	path := opts.catalogPath
	if path == "" {
		path = cfg.CatalogPath
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	var ex extract.TextExtractor = extract.NewStaticExtractor()
	if cfg.GeminiAPIKey != "" {
		gemini, err := extract.NewGeminiExtractor(ctx, extract.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Logger:  logger,
		})
		if err != nil {
			return nil, err
		}
		ex = gemini
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; texts will be empty")
	}

	return wizard.NewPipeline(wizard.PipelineOptions{
		Catalog:   cat,
		Extractor: ex,
		Timeout:   cfg.ExtractTimeout,
		Logger:    logger,
	}), nil
}

// readBanner loads path and guesses its content type from the extension.
// Unknown extensions are left for the pipeline to sniff.
func readBanner(path string) (wizard.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wizard.File{}, fmt.Errorf("read banner: %w", err)
	}
	return wizard.File{
		Name:     filepath.Base(path),
		MIMEType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Data:     data,
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
