package domain

import "strings"

const (
	EventSelectPromotion = "select_promotion"
	TypeElementBanner    = "banner"
	AmbienteCMS          = "cms"
)

// DataLayerRecord is the analytics event pushed for one brand. Field order
// defines the key order of the exported JSON.
type DataLayerRecord struct {
	Event           string `json:"event"`
	TypeElement     string `json:"typeElement"`
	TextElement     string `json:"textElement"`
	LocationElement string `json:"locationElement"`
	PageName        string `json:"pageName"`
	PromotionName   string `json:"promotionName"`
	Ambiente        string `json:"ambiente"`
}

// Brand returns the brand prefix of the composite page name.
func (r DataLayerRecord) Brand() string {
	brand, _, _ := strings.Cut(r.PageName, ":")
	return brand
}
