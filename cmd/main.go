package main

// Package main ist der Einstiegspunkt der Anwendung "projekt-tafel".
// Es verantwortet das Laden der Konfiguration, das Befüllen des In-Memory-
// Stores mit den Fixture-Daten, das Aufsetzen der Fiber-API mit Middleware
// und Routern sowie das Starten des HTTP-Servers.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/projekt-tafel/internal/config"
	"github.com/Xenn-00/projekt-tafel/internal/i18n"
	"github.com/Xenn-00/projekt-tafel/internal/middleware"
	"github.com/Xenn-00/projekt-tafel/internal/routers"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main initialisiert alle benötigten Ressourcen für den HTTP-Server und stellt sicher,
// dass bei Beendigung sauber heruntergefahren wird.
func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// 0. I18N Einführung
	i18nSvc := i18n.NewInitI18nService()

	// 1. Konfiguration laden (config.LoadConfig).
	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("Konfiguration konnte nicht geladen werden.")
	}

	// 2. In-Memory-Store mit Fixtures befüllen; der Store lebt so lange wie
	// der Prozess, es gibt keine Persistenz.
	dataStore := store.NewStore()

	// 3. Fiber-App mit ErrorHandler, RequestID-, Sprach-, CORS- und Logger-Middleware erstellen.
	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(cors.New()) // das Dashboard läuft auf einem anderen Origin

	// 4. Applikationsrouten registrieren (routers.SetupRoutes).
	routers.SetupRoutes(app, dataStore, i18nSvc, cfg)

	go func() {
		// 5. HTTP-Server starten (app.Listen), blockierend, darum in einer Goroutine.
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	// 6. Graceful Shutdown bei SIGINT/SIGTERM; der Store braucht kein Teardown,
	// sein Zustand endet mit dem Prozess.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgtreten: %v", err)
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}
