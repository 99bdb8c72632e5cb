package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

type GenerateHandler struct {
	composer services.ComposerService
}

func NewGenerateHandler(composer services.ComposerService) *GenerateHandler {
	return &GenerateHandler{composer: composer}
}

// HandleGenerate handles POST /generate. It is the only route that uses the
// language model.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	text, err := h.composer.Generate(c.UserContext(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyPrompt):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "prompt is required",
			})
		case errors.Is(err, services.ErrModelNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Language model is not configured",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Failed to generate text",
			})
		}
	}

	return c.JSON(models.GenerateResponse{Text: text})
}
