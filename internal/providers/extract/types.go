package extract

import (
	"context"
	"errors"
	"fmt"

	"bannerval/internal/domain"
)

// Image is the payload sent to an extractor.
type Image struct {
	Base64   string
	MIMEType string
}

// Result holds the two texts read off a banner.
type Result struct {
	PromotionName string `json:"promotionName"`
	TextElement   string `json:"textElement"`
}

// TextExtractor reads the campaign theme and the call-to-action text from a
// banner image.
type TextExtractor interface {
	Extract(ctx context.Context, img Image) (Result, error)
}

// ExtractorFunc adapts a function to TextExtractor.
type ExtractorFunc func(ctx context.Context, img Image) (Result, error)

func (f ExtractorFunc) Extract(ctx context.Context, img Image) (Result, error) {
	return f(ctx, img)
}

// Fallback reasons reported by DegradedError.
const (
	ReasonInput   = "input"
	ReasonRequest = "request"
	ReasonEmpty   = "empty"
	ReasonParse   = "parse"
)

// DegradedError reports why an extraction produced no usable text.
type DegradedError struct {
	Reason string
	Err    error
}

func (e *DegradedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extract: degraded (%s)", e.Reason)
	}
	return fmt.Sprintf("extract: degraded (%s): %v", e.Reason, e.Err)
}

func (e *DegradedError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrExtractionDegraded}
	}
	return []error{domain.ErrExtractionDegraded, e.Err}
}

// Reason returns the fallback reason carried by err, or "" when err is not a
// DegradedError.
func Reason(err error) string {
	var d *DegradedError
	if errors.As(err, &d) {
		return d.Reason
	}
	return ""
}

// StaticExtractor never reads anything. It stands in when no model is
// configured so the wizard still reaches the interaction step.
type StaticExtractor struct{}

func NewStaticExtractor() *StaticExtractor { return &StaticExtractor{} }

func (StaticExtractor) Extract(ctx context.Context, _ Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}

var _ TextExtractor = (*StaticExtractor)(nil)
