package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bannerval/internal/catalog"
	"bannerval/internal/http/handlers"
	httpapi "bannerval/internal/http/httpapi"
	"bannerval/internal/infra"
	"bannerval/internal/infra/geoip"
	"bannerval/internal/providers/extract"
	"bannerval/internal/wizard"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalog")
	}

	metrics := infra.NewMetrics()
	ctx := context.Background()

	var extractor extract.TextExtractor = extract.NewStaticExtractor()
	if cfg.GeminiAPIKey != "" {
		gemini, err := extract.NewGeminiExtractor(ctx, extract.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Logger:  &logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init gemini extractor")
		}
		extractor = gemini
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; banner text extraction disabled")
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	pipeline := wizard.NewPipeline(wizard.PipelineOptions{
		Catalog:   cat,
		Extractor: extractor,
		Timeout:   cfg.ExtractTimeout,
		Logger:    &logger,
		Metrics:   metrics,
	})
	store := wizard.NewStore(cfg.SessionCapacity, cfg.SessionTTL)
	app := handlers.NewApp(store, wizard.New(pipeline), metrics, &logger, cfg.MaxUploadBytes)

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:           &logger,
		CORSOrigins:      cfg.CORSOrigins,
		DefaultLocale:    cfg.DefaultLocale,
		CountryLookup:    resolver.Lookup,
		UploadsPerMinute: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("addr", server.Addr()).
			Int("dimensions", len(cat.Dimensions)).
			Int("brands", len(cat.Brands)).
			Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
