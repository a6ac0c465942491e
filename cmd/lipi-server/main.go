/**
 * lipi server - Main entry point
 *
 * HTTP service for Indic script detection, OCR with smart language
 * selection, and transliteration between Indian scripts.
 *
 * Optional capabilities are wired at startup: without a local Tesseract
 * the OCR endpoint answers 503, without a transliteration backend URL the
 * transliterate endpoint answers 503. The phrasebook lives in PostgreSQL
 * when DATABASE_URL is set, otherwise in a local JSON file.
 */

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/indictext/lipi/internal/config"
	"github.com/indictext/lipi/internal/logging"
	"github.com/indictext/lipi/internal/ocr"
	"github.com/indictext/lipi/internal/phrasebook"
	"github.com/indictext/lipi/internal/script"
	"github.com/indictext/lipi/internal/server"
	"github.com/indictext/lipi/internal/translit"
)

func main() {
	// .env is optional; the system environment is enough
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.NewLogger("lipi", "error", "console").Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logging.NewLogger("lipi", cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("addr", cfg.Addr).Msg("lipi server starting")

	classifier := script.NewClassifier(script.DefaultCatalog())

	// OCR capability
	var engine ocr.Engine
	if cfg.OCREnabled {
		engine = ocr.NewTesseractEngine()
		log.Info().Str("default_lang", cfg.OCRDefaultLang).Msg("tesseract OCR engine enabled")
	} else {
		log.Warn().Msg("OCR disabled, /api/ocr will answer 503")
	}
	selector := ocr.NewSelector(engine, classifier, script.DefaultLanguageTable(), cfg.OCRDefaultLang, log)

	// Transliteration capability
	var backend translit.Backend
	if cfg.TranslitAPIURL != "" {
		backend = translit.NewClient(cfg.TranslitAPIURL, cfg.TranslitTimeout)
		log.Info().Str("url", cfg.TranslitAPIURL).Msg("transliteration backend configured")
	} else {
		log.Warn().Msg("no transliteration backend, /api/transliterate will answer 503")
	}
	resolver := translit.NewResolver(backend, classifier)

	// Phrasebook store
	var store phrasebook.Store
	if cfg.DatabaseURL != "" {
		store, err = phrasebook.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize postgres phrasebook store")
		}
		log.Info().Msg("phrasebook store: postgres")
	} else {
		store, err = phrasebook.NewJSONFileStore(cfg.PhrasebookFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize phrasebook file store")
		}
		log.Info().Str("file", cfg.PhrasebookFile).Msg("phrasebook store: json file")
	}
	defer store.Close()

	handlers := &server.Handlers{
		Classifier:     classifier,
		Selector:       selector,
		Resolver:       resolver,
		Store:          store,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Log:            log,
	}
	srv := server.NewServer(cfg.Addr, handlers, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
