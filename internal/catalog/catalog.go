// Package catalog holds the accepted banner sizes, image formats and brands,
// and matches uploads against them.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"bannerval/internal/domain"
)

// Catalog is the static configuration a deployment validates against.
type Catalog struct {
	AcceptedFormats []string               `json:"acceptedFormats" yaml:"accepted_formats"`
	Brands          []domain.Brand         `json:"brands" yaml:"brands"`
	Dimensions      []domain.DimensionSpec `json:"dimensions" yaml:"dimensions"`
}

// Default returns the reference catalog.
func Default() *Catalog {
	return &Catalog{
		AcceptedFormats: []string{"image/png", "image/jpeg", "image/webp"},
		Brands: []domain.Brand{
			"anhanguera",
			"unopar",
			"pitagoras",
			"unime",
			"unic",
			"uniderp",
		},
		Dimensions: []domain.DimensionSpec{
			// SVG layouts are also exported as bitmaps at these sizes.
			{Width: 1440, Height: 260, Label: "Banner Principal Desktop (SVG)", Format: domain.FormatSVG},
			{Width: 390, Height: 200, Label: "Banner Principal Mobile (SVG)", Format: domain.FormatSVG},
			{Width: 1366, Height: 104, Label: "Strip Banner Desktop (SVG)", Format: domain.FormatSVG},
			{Width: 351, Height: 145, Label: "Strip Banner Mobile (SVG)", Format: domain.FormatSVG},

			{Width: 1920, Height: 347, Label: "Banner Principal Desktop (WEBP)", Format: domain.FormatWEBP},
			{Width: 640, Height: 328, Label: "Banner Principal Mobile (WEBP)", Format: domain.FormatWEBP},
			{Width: 1920, Height: 146, Label: "Strip Banner Desktop (WEBP)", Format: domain.FormatWEBP},
			{Width: 640, Height: 264, Label: "Strip Banner Mobile (WEBP)", Format: domain.FormatWEBP},

			{Width: 1920, Height: 400, Label: "Banner Padrão Adicional 1", Format: domain.FormatANY},
			{Width: 360, Height: 200, Label: "Banner Padrão Adicional 2", Format: domain.FormatANY},
		},
	}
}

// Load reads a YAML catalog from path. An empty path yields Default.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	for i := range c.AcceptedFormats {
		c.AcceptedFormats[i] = strings.ToLower(strings.TrimSpace(c.AcceptedFormats[i]))
	}
	for i := range c.Dimensions {
		c.Dimensions[i].Format = domain.Format(strings.ToUpper(strings.TrimSpace(string(c.Dimensions[i].Format))))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog is usable.
func (c *Catalog) Validate() error {
	var errs []error
	if len(c.AcceptedFormats) == 0 {
		errs = append(errs, errors.New("accepted_formats must not be empty"))
	}
	for _, f := range c.AcceptedFormats {
		if domain.FormatLabel(f) == "UNKNOWN" {
			errs = append(errs, fmt.Errorf("accepted format %q is not a mime type", f))
		}
	}
	if len(c.Brands) == 0 {
		errs = append(errs, errors.New("brands must not be empty"))
	}
	for i, b := range c.Brands {
		if strings.TrimSpace(b) == "" {
			errs = append(errs, fmt.Errorf("brands[%d] is blank", i))
		}
	}
	if len(c.Dimensions) == 0 {
		errs = append(errs, errors.New("dimensions must not be empty"))
	}
	for i, d := range c.Dimensions {
		if d.Width <= 0 || d.Height <= 0 {
			errs = append(errs, fmt.Errorf("dimensions[%d]: width and height must be positive", i))
		}
		if !d.Format.Valid() {
			errs = append(errs, fmt.Errorf("dimensions[%d]: unknown format %q", i, d.Format))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog: %w", errors.Join(errs...))
	}
	return nil
}
