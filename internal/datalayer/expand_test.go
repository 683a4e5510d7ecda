package datalayer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bannerval/internal/catalog"
	"bannerval/internal/domain"
)

func TestExpand(t *testing.T) {
	brands := catalog.Default().Brands
	got := Expand(
		Banner{TextElement: "Compre Já", PromotionName: "Black Friday"},
		domain.InteractionInput{PageName: "Home", LocationElement: "Banner Principal"},
		brands,
	)
	if len(got) != len(brands) {
		t.Fatalf("len(records) = %d, want %d", len(got), len(brands))
	}
	for i, r := range got {
		want := domain.DataLayerRecord{
			Event:           "select_promotion",
			TypeElement:     "banner",
			TextElement:     "compre_ja",
			LocationElement: "banner_principal",
			PageName:        brands[i] + ":home",
			PromotionName:   "black_friday",
			Ambiente:        "cms",
		}
		if diff := cmp.Diff(want, r); diff != "" {
			t.Fatalf("record[%d] mismatch (-want +got):\n%s", i, diff)
		}
		if r.Brand() != brands[i] {
			t.Fatalf("record[%d].Brand() = %q, want %q", i, r.Brand(), brands[i])
		}
	}
}

func TestExpandEmptyExtraction(t *testing.T) {
	got := Expand(Banner{}, domain.InteractionInput{PageName: "Página de Produto", LocationElement: "strip-banner"}, []string{"unic"})
	want := []domain.DataLayerRecord{{
		Event:           "select_promotion",
		TypeElement:     "banner",
		TextElement:     "",
		LocationElement: "strip_banner",
		PageName:        "unic:pagina_de_produto",
		PromotionName:   "",
		Ambiente:        "cms",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandNoBrands(t *testing.T) {
	got := Expand(Banner{TextElement: "x"}, domain.InteractionInput{PageName: "p", LocationElement: "l"}, nil)
	if len(got) != 0 {
		t.Fatalf("len(records) = %d, want 0", len(got))
	}
}

func TestFromValidation(t *testing.T) {
	b := FromValidation(domain.ValidationResult{IsValid: true, PromotionName: "Vestibular", TextElement: "Inscreva-se"})
	if b.PromotionName != "Vestibular" || b.TextElement != "Inscreva-se" {
		t.Fatalf("FromValidation = %#v", b)
	}
}
