// Package extract reads promotional text off banner images.
package extract

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"bannerval/internal/infra"
)

const (
	geminiDefaultModel   = "gemini-3-flash-preview"
	geminiDefaultTimeout = 60 * time.Second
)

const extractPrompt = `Analyze this banner and extract:
1. The 'promotionName': This is the main text with the highest visual prominence (the campaign theme).
2. The 'textElement': This is the text found on a button or Call-to-Action (CTA).

Return the result in JSON format.`

// GeminiOptions configures GeminiExtractor.
type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *infra.Logger
	// OnFallback is called whenever an extraction degrades to empty text.
	OnFallback func(reason string, err error)
}

// GeminiExtractor asks a Gemini model for the banner texts using a JSON
// response schema.
type GeminiExtractor struct {
	client     *genai.Client
	model      string
	logger     *infra.Logger
	onFallback func(reason string, err error)
}

func NewGeminiExtractor(ctx context.Context, opts GeminiOptions) (*GeminiExtractor, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = geminiDefaultModel
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: geminiDefaultTimeout}
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base + "/"}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &GeminiExtractor{
		client:     client,
		model:      model,
		logger:     logger,
		onFallback: opts.OnFallback,
	}, nil
}

// Model returns the configured model identifier.
func (g *GeminiExtractor) Model() string {
	return g.model
}

// Extract returns the banner texts. Any failure, including a response that is
// not JSON or ignores the schema, yields an empty Result together with a
// *DegradedError.
func (g *GeminiExtractor) Extract(ctx context.Context, img Image) (Result, error) {
	data, err := base64.StdEncoding.DecodeString(img.Base64)
	if err != nil || len(data) == 0 {
		if err == nil {
			err = errors.New("empty image payload")
		}
		return g.degrade(ReasonInput, err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, img.MIMEType),
			genai.NewPartFromText(extractPrompt),
		}, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return g.degrade(ReasonRequest, err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return g.degrade(ReasonEmpty, nil)
	}
	res, err := parseResult(text)
	if err != nil {
		return g.degrade(ReasonParse, err)
	}

	g.logger.Debug().
		Str("model", g.model).
		Str("promotion_name", res.PromotionName).
		Str("text_element", res.TextElement).
		Msg("extract: banner text read")
	return res, nil
}

func (g *GeminiExtractor) degrade(reason string, err error) (Result, error) {
	g.logger.Warn().
		Err(err).
		Str("model", g.model).
		Str("reason", reason).
		Msg("extract: gemini extraction failed; continuing with empty text")
	if g.onFallback != nil {
		g.onFallback(reason, err)
	}
	return Result{}, &DegradedError{Reason: reason, Err: err}
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"promotionName": {
				Type:        genai.TypeString,
				Description: "O texto principal com maior destaque visual na imagem.",
			},
			"textElement": {
				Type:        genai.TypeString,
				Description: "O texto localizado sobre uma forma de botão ou CTA.",
			},
		},
		Required: []string{"promotionName", "textElement"},
	}
}

var _ TextExtractor = (*GeminiExtractor)(nil)
