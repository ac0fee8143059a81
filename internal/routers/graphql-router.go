package routers

import (
	"time"

	"github.com/Xenn-00/projekt-tafel/internal/config"
	graphql_handlers "github.com/Xenn-00/projekt-tafel/internal/handlers/graphql"
	"github.com/Xenn-00/projekt-tafel/internal/i18n"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func GraphQLRouter(api fiber.Router, s *store.Store, i18n *i18n.I18nService, cfg *config.AppConfig) {
	graphqlHandler := graphql_handlers.NewGraphQLHandler(s, i18n, cfg)

	// Der Limiter läuft auf dem In-Memory-Default-Storage; es gibt nur
	// diesen einen Prozess.
	api.Post("/graphql", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
	}), graphqlHandler.Execute)

	api.Get("/graphql", graphqlHandler.Status)
}
