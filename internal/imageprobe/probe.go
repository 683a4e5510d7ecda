// Package imageprobe reads banner dimensions and content types from raw
// upload bytes.
package imageprobe

import (
	"bytes"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Dimensions are the pixel size of a decoded image. The zero value means the
// image could not be read.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Known reports whether the probe managed to read the image.
func (d Dimensions) Known() bool {
	return d.Width > 0 && d.Height > 0
}

// Probe decodes only the image header. It never fails: undecodable data
// yields zero dimensions.
func Probe(data []byte) Dimensions {
	if len(data) == 0 {
		return Dimensions{}
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}
}

// DetectMIME sniffs the content type of data, trying the standard library
// first and the broader mimetype database when that is inconclusive.
func DetectMIME(data []byte) string {
	if len(data) == 0 {
		return "application/octet-stream"
	}
	mt := http.DetectContentType(data)
	if mt != "application/octet-stream" && !strings.HasPrefix(mt, "text/") {
		return stripParams(mt)
	}
	return stripParams(mimetype.Detect(data).String())
}

// ResolveMIME prefers the declared content type and falls back to sniffing
// when it is missing or generic.
func ResolveMIME(declared string, data []byte) string {
	declared = stripParams(strings.ToLower(strings.TrimSpace(declared)))
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return DetectMIME(data)
}

func stripParams(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.TrimSpace(mt)
}
