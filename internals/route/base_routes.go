package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	chatbotController "hoctap_backend/internals/features/chatbot/controller"
)

func BaseRoutes(app *fiber.App, ctrl *chatbotController.ChatbotController) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Chat assistant service up 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("simulated panic") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		gateway := "configured"
		if ctrl.Cfg.APIKey == "" {
			gateway = "missing key (fallback only)"
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":         "OK",
			"gateway":        gateway,
			"sessions":       ctrl.Sessions.Len(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    ctrl.Cfg.AppEnv,
		})
	})
}
