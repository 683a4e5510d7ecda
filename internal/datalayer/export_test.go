package datalayer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"bannerval/internal/domain"
)

func sampleRecords() []domain.DataLayerRecord {
	return Expand(
		Banner{TextElement: "Saiba Mais", PromotionName: "Bolsas & Descontos"},
		domain.InteractionInput{PageName: "Home", LocationElement: "Banner Principal"},
		[]string{"anhanguera", "unopar"},
	)
}

func TestMarshalKeyOrder(t *testing.T) {
	b, err := Marshal(sampleRecords()[0])
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	want := `{
  "event": "select_promotion",
  "typeElement": "banner",
  "textElement": "saiba_mais",
  "locationElement": "banner_principal",
  "pageName": "anhanguera:home",
  "promotionName": "bolsas_descontos",
  "ambiente": "cms"
}`
	if string(b) != want {
		t.Fatalf("Marshal =\n%s\nwant\n%s", b, want)
	}
}

func TestColumnsMatchJSONKeys(t *testing.T) {
	b, err := json.Marshal(sampleRecords()[0])
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		t.Fatalf("read open brace: %v", err)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		keys = append(keys, tok.(string))
		if _, err := dec.Token(); err != nil {
			t.Fatalf("read value: %v", err)
		}
	}
	if strings.Join(keys, ",") != strings.Join(Columns, ",") {
		t.Fatalf("keys = %v, want %v", keys, Columns)
	}
}

func TestText(t *testing.T) {
	out, err := Text(sampleRecords())
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	parts := strings.Split(out, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("got %d blocks, want 2", len(parts))
	}
	var r domain.DataLayerRecord
	if err := json.Unmarshal([]byte(parts[1]), &r); err != nil {
		t.Fatalf("second block is not json: %v", err)
	}
	if r.PageName != "unopar:home" {
		t.Fatalf("PageName = %q, want %q", r.PageName, "unopar:home")
	}
}

func TestFind(t *testing.T) {
	records := sampleRecords()
	r, ok := Find(records, "unopar")
	if !ok || r.PageName != "unopar:home" {
		t.Fatalf("Find(unopar) = %#v, %v", r, ok)
	}
	if _, ok := Find(records, "unic"); ok {
		t.Fatal("Find(unic) should miss")
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteXLSX returned error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(Columns, ",") {
		t.Fatalf("header = %v, want %v", rows[0], Columns)
	}
	if rows[2][4] != "unopar:home" {
		t.Fatalf("rows[2] pageName = %q, want %q", rows[2][4], "unopar:home")
	}
}
