package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

type ComposeHandler struct {
	composer services.ComposerService
}

func NewComposeHandler(composer services.ComposerService) *ComposeHandler {
	return &ComposeHandler{
		composer: composer,
	}
}

// HandleCompose handles POST /compose
func (h *ComposeHandler) HandleCompose(c *fiber.Ctx) error {
	docs, err := h.compose(c)
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// HandleDownload handles POST /compose/download and returns both views as a single
// HTML attachment.
func (h *ComposeHandler) HandleDownload(c *fiber.Ctx) error {
	docs, err := h.compose(c)
	if err != nil {
		return err
	}

	c.Attachment(services.DownloadFileName)
	return c.SendString(services.CombineDocuments(docs))
}

func (h *ComposeHandler) compose(c *fiber.Ctx) (*models.ComposedDocuments, error) {
	var fields models.ResumeFields
	if err := c.BodyParser(&fields); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	docs, err := h.composer.Compose(fields)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to compose resume")
	}
	return docs, nil
}
