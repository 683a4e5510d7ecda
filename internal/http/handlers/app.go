package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bannerval/internal/domain"
	"bannerval/internal/infra"
	"bannerval/internal/wizard"
)

// multipartOverhead is the slack allowed on top of the file size for the
// multipart envelope.
const multipartOverhead = 64 << 10

type App struct {
	Store     *wizard.Store
	Wizard    *wizard.Wizard
	Metrics   *infra.Metrics
	Logger    *infra.Logger
	MaxUpload int64
}

func NewApp(store *wizard.Store, wz *wizard.Wizard, metrics *infra.Metrics, logger *infra.Logger, maxUpload int64) *App {
	if logger == nil {
		logger = infra.NopLogger()
	}
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}
	return &App{Store: store, Wizard: wz, Metrics: metrics, Logger: logger, MaxUpload: maxUpload}
}

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]errorBody{"error": {Code: errCode, Message: message}})
}

// fail maps a domain error onto its HTTP status.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr *wizard.InputError
	switch {
	case errors.As(err, &inputErr):
		a.json(w, http.StatusUnprocessableEntity, map[string]errorBody{"error": {
			Code:    "invalid_input",
			Message: "pageName and locationElement are required",
			Fields:  inputErr.Fields,
		}})
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "session not found")
	case errors.Is(err, domain.ErrBusy):
		a.error(w, http.StatusConflict, "busy", "a banner is already being validated")
	case errors.Is(err, domain.ErrInvalidTransition):
		a.error(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("http: unhandled error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
