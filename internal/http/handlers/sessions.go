package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bannerval/internal/domain"
	"bannerval/internal/middleware"
	"bannerval/internal/wizard"
)

type sessionView struct {
	ID          string                   `json:"id"`
	Step        wizard.Step              `json:"step"`
	Progress    int                      `json:"progress"`
	Upload      *wizard.Upload           `json:"upload,omitempty"`
	Validation  *domain.ValidationResult `json:"validation,omitempty"`
	Interaction *domain.InteractionInput `json:"interaction,omitempty"`
	Records     []domain.DataLayerRecord `json:"records"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

func newSessionView(sess *wizard.Session, st wizard.State) sessionView {
	records := st.Records
	if records == nil {
		records = []domain.DataLayerRecord{}
	}
	step := st.Step
	if step == "" {
		step = wizard.StepUpload
	}
	return sessionView{
		ID:          sess.ID,
		Step:        step,
		Progress:    step.Progress(),
		Upload:      st.Upload,
		Validation:  st.Validation,
		Interaction: st.Interaction,
		Records:     records,
		UpdatedAt:   sess.UpdatedAt(),
	}
}

func (a *App) session(w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	sess, err := a.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return nil, false
	}
	return sess, true
}

func (a *App) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := a.Store.Create()
	a.json(w, http.StatusCreated, newSessionView(sess, sess.State()))
}

func (a *App) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, newSessionView(sess, sess.State()))
}

func (a *App) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := a.Store.Get(id); err != nil {
		a.fail(w, r, err)
		return
	}
	a.Store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// UploadBanner reads the multipart "file" field and runs validation. A
// mismatch is answered with 200 and the session in ERROR.
func (a *App) UploadBanner(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	if r.ContentLength > a.MaxUpload+multipartOverhead {
		a.tooLarge(w)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(a.MaxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.tooLarge(w)
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "multipart form with a file field is required")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "file is required")
		return
	}
	defer file.Close()
	if header.Size > a.MaxUpload {
		a.tooLarge(w)
		return
	}

	locale := middleware.LocaleFromContext(r.Context())
	upload := wizard.File{Name: header.Filename, MIMEType: header.Header.Get("Content-Type")}
	data, err := io.ReadAll(file)
	if err != nil {
		a.Logger.Warn().Err(err).Str("session", sess.ID).Msg("http: read upload failed")
		st, ferr := a.Wizard.Fail(sess, upload, locale)
		if ferr != nil {
			a.fail(w, r, ferr)
			return
		}
		a.json(w, http.StatusOK, newSessionView(sess, st))
		return
	}
	upload.Data = data

	st, err := a.Wizard.Upload(r.Context(), sess, upload, locale)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newSessionView(sess, st))
}

func (a *App) tooLarge(w http.ResponseWriter) {
	a.error(w, http.StatusRequestEntityTooLarge, "too_large", "banner exceeds the upload limit")
}

func (a *App) SubmitInteraction(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	var in domain.InteractionInput
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	st, err := a.Wizard.Submit(sess, in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newSessionView(sess, st))
}

func (a *App) ResetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := a.session(w, r)
	if !ok {
		return
	}
	st, err := a.Wizard.Reset(sess)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newSessionView(sess, st))
}
