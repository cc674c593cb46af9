package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"hoctap_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar dengan urutan tetap:
// recovery paling luar, lalu CORS, limiter, logging.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
