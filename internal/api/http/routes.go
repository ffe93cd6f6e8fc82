package httpapi

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Assistant answers a single user query with a user-facing string.
type Assistant interface {
	Answer(ctx context.Context, userText string) string
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, bot Assistant) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(consolePage)
	})

	v1 := app.Group("/api/v1")

	v1.Post("/ask", func(c *fiber.Ctx) error {
		var req askRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		answer := bot.Answer(c.Context(), strings.TrimSpace(req.Query))
		return c.JSON(fiber.Map{
			"answer": answer,
		})
	})
}

// askRequest is the body of the ask endpoint.
type askRequest struct {
	Query string `json:"query" validate:"required"`
}
