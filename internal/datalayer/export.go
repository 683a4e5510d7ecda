package datalayer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"bannerval/internal/domain"
	"bannerval/pkg/zip"
)

// Columns lists the record keys in export order.
var Columns = []string{
	"event",
	"typeElement",
	"textElement",
	"locationElement",
	"pageName",
	"promotionName",
	"ambiente",
}

// Marshal renders one record as indented JSON, the form pasted into a tag
// manager.
func Marshal(r domain.DataLayerRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("datalayer: marshal: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Text renders every record as indented JSON separated by a blank line.
func Text(records []domain.DataLayerRecord) (string, error) {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		b, err := Marshal(r)
		if err != nil {
			return "", err
		}
		parts = append(parts, string(b))
	}
	return strings.Join(parts, "\n\n"), nil
}

// Find returns the record emitted for brand.
func Find(records []domain.DataLayerRecord, brand string) (domain.DataLayerRecord, bool) {
	for _, r := range records {
		if r.Brand() == brand {
			return r, true
		}
	}
	return domain.DataLayerRecord{}, false
}

// WriteXLSX writes the records as a single sheet, one row per brand, with a
// header row in Columns order.
func WriteXLSX(w io.Writer, records []domain.DataLayerRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, h := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, r := range records {
		row := []string{r.Event, r.TypeElement, r.TextElement, r.LocationElement, r.PageName, r.PromotionName, r.Ambiente}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("datalayer: write xlsx: %w", err)
	}
	return nil
}

// WriteZip archives one "<brand>.json" file per record, each holding the
// indented record.
func WriteZip(w io.Writer, records []domain.DataLayerRecord) error {
	entries := make([]zip.Entry, 0, len(records))
	for _, r := range records {
		b, err := Marshal(r)
		if err != nil {
			return err
		}
		name := r.Brand()
		if name == "" {
			name = "datalayer"
		}
		entries = append(entries, zip.Entry{Filename: name + ".json", Data: append(b, '\n')})
	}
	return zip.Write(w, entries, time.Now())
}
