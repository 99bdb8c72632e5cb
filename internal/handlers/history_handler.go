package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/repositories"
)

type HistoryHandler struct {
	recorder repositories.AnalysisRecorder
}

func NewHistoryHandler(recorder repositories.AnalysisRecorder) *HistoryHandler {
	return &HistoryHandler{
		recorder: recorder,
	}
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *HistoryHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	if !h.recorder.Enabled() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis history is disabled",
		})
	}

	idParam := c.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	report, err := h.recorder.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Analysis not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load analysis",
		})
	}

	return c.JSON(report)
}

// HandleListAnalyses handles GET /analyses?limit=N
func (h *HistoryHandler) HandleListAnalyses(c *fiber.Ctx) error {
	if !h.recorder.Enabled() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis history is disabled",
		})
	}

	limit := c.QueryInt("limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	reports, err := h.recorder.Recent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load analyses",
		})
	}
	if reports == nil {
		reports = []*models.AnalysisReport{}
	}

	return c.JSON(models.AnalysisListResponse{Analyses: reports})
}
