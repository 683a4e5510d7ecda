package handlers

import (
	"net/http"
	"strings"

	"bannerval/internal/domain"
)

type catalogResponse struct {
	AcceptedFormats []string               `json:"acceptedFormats"`
	Brands          []domain.Brand         `json:"brands"`
	Dimensions      []domain.DimensionSpec `json:"dimensions"`
	Groups          catalogGroups          `json:"groups"`
}

type catalogGroups struct {
	Desktop []domain.DimensionSpec `json:"desktop"`
	Mobile  []domain.DimensionSpec `json:"mobile"`
	Other   []domain.DimensionSpec `json:"other"`
}

// Catalog lists the accepted sizes, formats and brands, with sizes grouped
// by the device named in their label.
func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	cat := a.Wizard.Pipeline().Catalog()
	groups := catalogGroups{
		Desktop: []domain.DimensionSpec{},
		Mobile:  []domain.DimensionSpec{},
		Other:   []domain.DimensionSpec{},
	}
	for _, d := range cat.Dimensions {
		label := strings.ToLower(d.Label)
		switch {
		case strings.Contains(label, "desktop"):
			groups.Desktop = append(groups.Desktop, d)
		case strings.Contains(label, "mobile"):
			groups.Mobile = append(groups.Mobile, d)
		default:
			groups.Other = append(groups.Other, d)
		}
	}
	a.json(w, http.StatusOK, catalogResponse{
		AcceptedFormats: cat.AcceptedFormats,
		Brands:          cat.Brands,
		Dimensions:      cat.Dimensions,
		Groups:          groups,
	})
}
