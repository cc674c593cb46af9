package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// The chat endpoint speaks the envelope the web client was written
// against: {status:"success", reply} on the happy path and
// {status:"error", message} on the two user-visible failures (CSRF
// rejection, method rejection). Do not add fields; the front end
// switches on exactly these keys.

func JsonReply(c *fiber.Ctx, reply string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"reply":  reply,
	})
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// JsonOK is for the auxiliary GET routes (session bootstrap, language
// list, health) that are not bound by the chat envelope.
func JsonOK(c *fiber.Ctx, data fiber.Map) error {
	body := fiber.Map{"status": "success"}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
