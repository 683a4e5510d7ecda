package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bannerval/internal/http/handlers"
	"bannerval/internal/infra"
	"bannerval/internal/middleware"
)

// Options configures the middleware stack.
type Options struct {
	Logger        *infra.Logger
	CORSOrigins   []string
	DefaultLocale string
	CountryLookup middleware.CountryLookup
	// UploadsPerMinute limits banner uploads per client IP. Zero disables it.
	UploadsPerMinute int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = infra.NopLogger()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(*logger),
		middleware.CORS(opts.CORSOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/catalog", app.Catalog)

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", app.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.GetSession)
			r.Delete("/", app.DeleteSession)
			r.With(middleware.RateLimit(opts.UploadsPerMinute, time.Minute)).Post("/banner", app.UploadBanner)
			r.Post("/interaction", app.SubmitInteraction)
			r.Post("/reset", app.ResetSession)
			r.Get("/datalayers", app.Datalayers)
		})
	})

	if app.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.Metrics.Handler())
	}

	return r
}
