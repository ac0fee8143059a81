package middleware

import (
	"errors"

	"github.com/Xenn-00/projekt-tafel/internal/dtos"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	internal_i18n "github.com/Xenn-00/projekt-tafel/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware behandelt Fehler, die während der Anfrageverarbeitung
// auftreten, und rendert sie als GraphQL-Fehlerumschlag. Anwendungsfehler sind
// Daten und gehen mit HTTP 200 raus; nur unerwartete interne Fehler werden
// zu HTTP 500.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = "en"
		}

		var appErr *app_errors.AppError
		if !errors.As(err, &appErr) {
			appErr = app_errors.NewAppError(
				fiber.StatusInternalServerError,
				app_errors.ErrInternal,
				"internal_error",
				err,
			)
		}

		reqID, _ := c.Locals("request_id").(string)

		gqlErr := dtos.GraphQLError{
			Message: i18nSvc.T(lang, appErr.MessageKey, nil),
			Extensions: &dtos.ErrorExtensions{
				Code:      appErr.Code,
				Type:      appErr.Type,
				RequestID: reqID,
			},
		}

		for _, d := range appErr.Details {
			gqlErr.Extensions.Details = append(gqlErr.Extensions.Details, fiber.Map{
				"field":   d.Field,
				"reason":  d.Reason,
				"message": i18nSvc.T(lang, d.MessageKey, d.Params),
			})
		}

		if appErr.Err != nil {
			log.Error().Err(appErr.Err).Str("request_id", reqID).Msg("application error")
		}

		status := fiber.StatusOK
		if appErr.Type == app_errors.ErrInternal {
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(dtos.GraphQLResponse{
			Errors: []dtos.GraphQLError{gqlErr},
		})
	}
}
