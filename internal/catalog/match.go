package catalog

import (
	"strings"

	"bannerval/internal/domain"
)

// MatchResult holds the raw facts of a dimension/format check. Building user
// facing prose from it is the caller's job.
type MatchResult struct {
	OK              bool
	FormatLabel     string
	Width           int
	Height          int
	FormatAccepted  bool
	DimensionsMatch bool
	// Spec is the first catalog entry with the same size, if any.
	Spec *domain.DimensionSpec
}

// Matches reports whether the mime type is accepted and (width, height)
// equals at least one catalog entry. The entry's format label is not
// compared: it only describes how the layout was designed.
func (c *Catalog) Matches(width, height int, mimeType string) MatchResult {
	res := MatchResult{
		FormatLabel: domain.FormatLabel(mimeType),
		Width:       width,
		Height:      height,
	}
	res.FormatAccepted = c.formatAccepted(res.FormatLabel)
	for i := range c.Dimensions {
		d := c.Dimensions[i]
		if d.Width == width && d.Height == height {
			res.DimensionsMatch = true
			res.Spec = &d
			break
		}
	}
	res.OK = res.FormatAccepted && res.DimensionsMatch
	return res
}

func (c *Catalog) formatAccepted(label string) bool {
	for _, f := range c.AcceptedFormats {
		if strings.EqualFold(domain.FormatLabel(f), label) {
			return true
		}
	}
	return false
}
