package routers

import (
	"github.com/Xenn-00/projekt-tafel/internal/config"
	"github.com/Xenn-00/projekt-tafel/internal/i18n"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, s *store.Store, i18n *i18n.I18nService, cfg *config.AppConfig) {
	api := app.Group("/api/v1")

	GraphQLRouter(api, s, i18n, cfg)
	HealthRouter(api, s)
}
