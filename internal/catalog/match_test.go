package catalog

import "testing"

func TestMatches(t *testing.T) {
	c := Default()
	tests := []struct {
		name     string
		width    int
		height   int
		mime     string
		wantOK   bool
		wantFmt  string
		wantDims bool
	}{
		{name: "svg entry with png upload", width: 1440, height: 260, mime: "image/png", wantOK: true, wantFmt: "PNG", wantDims: true},
		{name: "off by one width", width: 1441, height: 260, mime: "image/png", wantOK: false, wantFmt: "PNG", wantDims: false},
		{name: "bmp not accepted", width: 1920, height: 400, mime: "image/bmp", wantOK: false, wantFmt: "BMP", wantDims: true},
		{name: "webp mobile", width: 640, height: 328, mime: "image/webp", wantOK: true, wantFmt: "WEBP", wantDims: true},
		{name: "jpeg additional", width: 360, height: 200, mime: "image/jpeg", wantOK: true, wantFmt: "JPEG", wantDims: true},
		{name: "swapped dimensions", width: 260, height: 1440, mime: "image/png", wantOK: false, wantFmt: "PNG", wantDims: false},
		{name: "svg upload rejected", width: 1440, height: 260, mime: "image/svg+xml", wantOK: false, wantFmt: "SVG+XML", wantDims: true},
		{name: "undecodable", width: 0, height: 0, mime: "image/png", wantOK: false, wantFmt: "PNG", wantDims: false},
		{name: "missing mime", width: 1440, height: 260, mime: "", wantOK: false, wantFmt: "UNKNOWN", wantDims: true},
		{name: "mime with parameters", width: 1366, height: 104, mime: "IMAGE/WEBP; charset=binary", wantOK: true, wantFmt: "WEBP", wantDims: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Matches(tc.width, tc.height, tc.mime)
			if got.OK != tc.wantOK {
				t.Fatalf("OK = %v, want %v", got.OK, tc.wantOK)
			}
			if got.FormatLabel != tc.wantFmt {
				t.Fatalf("FormatLabel = %q, want %q", got.FormatLabel, tc.wantFmt)
			}
			if got.DimensionsMatch != tc.wantDims {
				t.Fatalf("DimensionsMatch = %v, want %v", got.DimensionsMatch, tc.wantDims)
			}
			if got.Width != tc.width || got.Height != tc.height {
				t.Fatalf("detected = %dx%d, want %dx%d", got.Width, got.Height, tc.width, tc.height)
			}
		})
	}
}

func TestMatchesReturnsSpec(t *testing.T) {
	got := Default().Matches(1920, 146, "image/webp")
	if got.Spec == nil {
		t.Fatal("expected a matching dimension entry")
	}
	if got.Spec.Label != "Strip Banner Desktop (WEBP)" {
		t.Fatalf("Spec.Label = %q", got.Spec.Label)
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(c.Dimensions) != 10 {
		t.Fatalf("len(Dimensions) = %d, want 10", len(c.Dimensions))
	}
	if len(c.Brands) != 6 {
		t.Fatalf("len(Brands) = %d, want 6", len(c.Brands))
	}
}
