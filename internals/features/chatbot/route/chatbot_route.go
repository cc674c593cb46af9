package route

import (
	"github.com/gofiber/fiber/v2"

	chatbotController "hoctap_backend/internals/features/chatbot/controller"
	helper "hoctap_backend/internals/helpers"
	middlewares "hoctap_backend/internals/middlewares"
)

// ChatbotRoutes binds the assistant endpoints under /api/chatbot.
// /ask is POST-only: the explicit OPTIONS handler answers preflight
// with 200 (the widget checks the code), and the trailing catch-all
// turns every other method into a minimal 405 body.
func ChatbotRoutes(app *fiber.App, ctrl *chatbotController.ChatbotController) {
	chatbot := app.Group("/api/chatbot")

	chatbot.Get("/session", ctrl.Session)
	chatbot.Get("/languages", ctrl.Languages)

	chatbot.Post("/ask", middlewares.ChatRateLimiter(), ctrl.Ask)
	chatbot.Options("/ask", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	chatbot.All("/ask", func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusMethodNotAllowed, "Method not allowed")
	})
}
