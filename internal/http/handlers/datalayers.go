package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"bannerval/internal/datalayer"
	"bannerval/internal/domain"
	"bannerval/internal/wizard"
)

// Datalayers exports the records of a session in RESULT. ?brand narrows the
// export to one record and ?format picks json (default), text, xlsx
// or zip.
func (a *App) Datalayers(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	st := sess.State()
	if st.Step != wizard.StepResult {
		a.error(w, http.StatusConflict, "invalid_transition", fmt.Sprintf("no data layers in %s", st.Step))
		return
	}

	records := st.Records
	if brand := strings.TrimSpace(r.URL.Query().Get("brand")); brand != "" {
		rec, found := datalayer.Find(records, strings.ToLower(brand))
		if !found {
			a.error(w, http.StatusNotFound, "not_found", "unknown brand")
			return
		}
		records = []domain.DataLayerRecord{rec}
	}

	switch format := strings.ToLower(r.URL.Query().Get("format")); format {
	case "", "json":
		a.json(w, http.StatusOK, records)
	case "text":
		text, err := datalayer.Text(records)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(text))
	case "xlsx":
		var buf bytes.Buffer
		if err := datalayer.WriteXLSX(&buf, records); err != nil {
			a.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="datalayers.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	case "zip":
		var buf bytes.Buffer
		if err := datalayer.WriteZip(&buf, records); err != nil {
			a.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="datalayers.zip"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "format must be json, text, xlsx or zip")
	}
}
