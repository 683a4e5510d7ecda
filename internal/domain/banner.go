package domain

import "strings"

// Format is the descriptive format label attached to a catalog entry.
type Format string

const (
	FormatSVG  Format = "SVG"
	FormatWEBP Format = "WEBP"
	FormatANY  Format = "ANY"
)

// Valid reports whether f is one of the known labels.
func (f Format) Valid() bool {
	switch f {
	case FormatSVG, FormatWEBP, FormatANY:
		return true
	}
	return false
}

// DimensionSpec is one accepted banner size.
type DimensionSpec struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Label  string `json:"label" yaml:"label"`
	Format Format `json:"format" yaml:"format"`
}

// Brand identifies one of the sites every data layer is emitted for.
type Brand = string

// ValidationResult is produced once per upload attempt.
type ValidationResult struct {
	IsValid       bool   `json:"isValid"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	PromotionName string `json:"promotionName,omitempty"`
	TextElement   string `json:"textElement,omitempty"`
	Error         string `json:"error,omitempty"`
}

// InteractionInput holds the two fields typed by the user before the data
// layers are generated.
type InteractionInput struct {
	PageName        string `json:"pageName" validate:"required,notblank"`
	LocationElement string `json:"locationElement" validate:"required,notblank"`
}

// FormatLabel maps a MIME type to its upper-cased subtype ("image/webp" →
// "WEBP"). Parameters are ignored. An empty subtype yields "UNKNOWN".
func FormatLabel(mimeType string) string {
	mt := strings.TrimSpace(mimeType)
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	_, sub, ok := strings.Cut(mt, "/")
	if !ok || strings.TrimSpace(sub) == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.TrimSpace(sub))
}
