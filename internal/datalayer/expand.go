// Package datalayer builds and exports the per-brand select_promotion records.
package datalayer

import (
	"bannerval/internal/domain"
	"bannerval/internal/normalize"
)

// Banner is the extracted part of a validated banner that ends up in every
// record.
type Banner struct {
	TextElement   string
	PromotionName string
}

// FromValidation picks the extracted texts off a validation result.
func FromValidation(v domain.ValidationResult) Banner {
	return Banner{TextElement: v.TextElement, PromotionName: v.PromotionName}
}

// Expand produces one record per brand, in brand order. Only pageName varies
// between records: it is "<brand>:<normalized page name>".
func Expand(b Banner, in domain.InteractionInput, brands []domain.Brand) []domain.DataLayerRecord {
	page := normalize.String(in.PageName)
	text := normalize.String(b.TextElement)
	location := normalize.String(in.LocationElement)
	promo := normalize.String(b.PromotionName)

	records := make([]domain.DataLayerRecord, 0, len(brands))
	for _, brand := range brands {
		records = append(records, domain.DataLayerRecord{
			Event:           domain.EventSelectPromotion,
			TypeElement:     domain.TypeElementBanner,
			TextElement:     text,
			LocationElement: location,
			PageName:        brand + ":" + page,
			PromotionName:   promo,
			Ambiente:        domain.AmbienteCMS,
		})
	}
	return records
}
