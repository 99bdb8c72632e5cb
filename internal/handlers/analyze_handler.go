package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

type AnalyzeHandler struct {
	analyzer      services.AnalyzerService
	uploadService services.UploadService
	defaultSkills string
	maxFiles      int
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	uploadService services.UploadService,
	defaultSkills string,
	maxFiles int,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:      analyzer,
		uploadService: uploadService,
		defaultSkills: defaultSkills,
		maxFiles:      maxFiles,
	}
}

// HandleAnalyze handles POST /analyze. It expects a multipart form with a "skills"
// field and one or more "files" parts.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"warning": services.ErrNoDocuments.Error(),
		})
	}

	skillsInput := h.defaultSkills
	if values, ok := form.Value["skills"]; ok && len(values) > 0 {
		skillsInput = values[0]
	}

	files := form.File["files"]
	if h.maxFiles > 0 && len(files) > h.maxFiles {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many files. Max files: %d", h.maxFiles),
		})
	}

	docs := h.uploadService.ReadFiles(files)

	report, err := h.analyzer.Analyze(c.UserContext(), services.ParseSkills(skillsInput), docs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoDocuments):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"warning": err.Error(),
			})
		case errors.Is(err, services.ErrNoSkills):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to analyze resumes",
			})
		}
	}

	response := models.AnalyzeResponse{AnalysisReport: report}
	if len(report.Failures) > 0 {
		response.Warning = fmt.Sprintf("%d of %d files could not be read", len(report.Failures), len(docs))
	}

	return c.JSON(response)
}
