package handlers

import "github.com/gofiber/fiber/v2"

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	if lang == "" {
		lang = "en"
	}
	return lang
}

// GetActorID liest die Identität des Aufrufers aus dem X-Actor-ID-Header.
// Authentifizierung ist Sache eines vorgelagerten Systems; ohne Header gilt
// der konfigurierte Demo-Akteur.
func GetActorID(c *fiber.Ctx, fallback string) string {
	actorID := c.Get("X-Actor-ID")
	if actorID == "" {
		actorID = fallback
	}
	return actorID
}
