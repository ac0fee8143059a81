package routers

import (
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/gofiber/fiber/v2"
)

// HealthRouter registriert Health- und Readiness-Endpoints auf dem gegebenen Fiber-Router.
// Parameter:
//   - app: Ziel-Router (fiber.Router), auf dem die Routen registriert werden.
//   - s:   In-Memory-Store für den Readiness-Check.
func HealthRouter(app fiber.Router, s *store.Store) {
	// Endpoints:
	//   - GET /healthz: Liefert eine JSON-Antwort mit Statusinformation (HTTP 200).
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Health-OK",
			"message": "Service lebt.",
		})
	})
	//   - GET /livez:  Einfache Liveness-Antwort als Text (HTTP 200).
	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})
	//   - GET /readyz: Bereit, sobald die Fixtures geladen sind.
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if !s.Seeded() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "Fehlversuch",
				"error":  "Store ist nicht bereit.",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Bereit",
			"message": "Store und App sind einsatzbereit.",
		})
	})
}
