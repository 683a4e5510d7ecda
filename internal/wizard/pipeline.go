package wizard

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"bannerval/internal/catalog"
	"bannerval/internal/domain"
	"bannerval/internal/imageprobe"
	"bannerval/internal/infra"
	"bannerval/internal/providers/extract"
)

// File is one uploaded banner.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Pipeline runs the VALIDATING step: dimension/format match, then text
// extraction.
type Pipeline struct {
	catalog   *catalog.Catalog
	extractor extract.TextExtractor
	timeout   time.Duration
	logger    *infra.Logger
	metrics   *infra.Metrics
}

// PipelineOptions configures NewPipeline. Only Catalog is required.
type PipelineOptions struct {
	Catalog   *catalog.Catalog
	Extractor extract.TextExtractor
	// Timeout bounds the extraction call. Zero means no bound beyond ctx.
	Timeout time.Duration
	Logger  *infra.Logger
	Metrics *infra.Metrics
}

func NewPipeline(opts PipelineOptions) *Pipeline {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	ex := opts.Extractor
	if ex == nil {
		ex = extract.NewStaticExtractor()
	}
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &Pipeline{
		catalog:   cat,
		extractor: ex,
		timeout:   opts.Timeout,
		logger:    logger,
		metrics:   opts.Metrics,
	}
}

// Catalog returns the catalog the pipeline validates against.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.catalog
}

// Validate checks f against the catalog and, when it passes, reads its texts.
// A mismatch returns the failed result together with a *domain.MismatchError.
// Extraction failures never fail validation: the texts are left empty.
func (p *Pipeline) Validate(ctx context.Context, f File, locale string) (domain.ValidationResult, error) {
	mimeType := imageprobe.ResolveMIME(f.MIMEType, f.Data)
	dims := imageprobe.Probe(f.Data)
	match := p.catalog.Matches(dims.Width, dims.Height, mimeType)

	res := domain.ValidationResult{
		Width:  dims.Width,
		Height: dims.Height,
		Format: match.FormatLabel,
	}
	if !match.OK {
		mismatch := &domain.MismatchError{
			Width:       dims.Width,
			Height:      dims.Height,
			Format:      match.FormatLabel,
			Undecodable: !dims.Known(),
		}
		res.Error = MismatchMessage(locale, mismatch)
		p.metrics.ValidationOutcome("mismatch")
		p.logger.Info().
			Str("file", f.Name).
			Str("format", match.FormatLabel).
			Int("width", dims.Width).
			Int("height", dims.Height).
			Bool("format_accepted", match.FormatAccepted).
			Bool("dimensions_match", match.DimensionsMatch).
			Msg("wizard: banner rejected")
		return res, mismatch
	}

	text := p.extract(ctx, f, mimeType)
	res.IsValid = true
	res.PromotionName = text.PromotionName
	res.TextElement = text.TextElement
	p.metrics.ValidationOutcome("valid")
	p.logger.Info().
		Str("file", f.Name).
		Str("format", match.FormatLabel).
		Int("width", dims.Width).
		Int("height", dims.Height).
		Str("layout", match.Spec.Label).
		Msg("wizard: banner accepted")
	return res, nil
}

func (p *Pipeline) extract(ctx context.Context, f File, mimeType string) extract.Result {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	img := extract.Image{
		Base64:   base64.StdEncoding.EncodeToString(f.Data),
		MIMEType: mimeType,
	}
	res, err := p.extractor.Extract(ctx, img)
	if err != nil {
		reason := extract.Reason(err)
		if reason == "" && errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		p.metrics.ExtractionDegraded(reason)
		p.logger.Warn().
			Err(err).
			Str("file", f.Name).
			Str("reason", reason).
			Msg("wizard: text extraction degraded; continuing with empty text")
		return extract.Result{}
	}
	return res
}
