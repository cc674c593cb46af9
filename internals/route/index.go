// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	chatbotController "hoctap_backend/internals/features/chatbot/controller"
	chatbotRoute "hoctap_backend/internals/features/chatbot/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, ctrl *chatbotController.ChatbotController) {
	startTime = time.Now()

	BaseRoutes(app, ctrl)

	log.Println("[INFO] Setting up ChatbotRoutes...")
	chatbotRoute.ChatbotRoutes(app, ctrl)
}
