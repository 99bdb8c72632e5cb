package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"alfredoptarigan/resume-ats/internal/models"
)

// DownloadFileName is the attachment name of the combined resume and cover letter.
const DownloadFileName = "AI_Resume_Cover_Letter.html"

var ErrEmptyPrompt = errors.New("prompt is required")

//go:embed templates/*.html
var templateFS embed.FS

var composerTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type ComposerService interface {
	Compose(fields models.ResumeFields) (*models.ComposedDocuments, error)
	Generate(ctx context.Context, prompt string) (string, error)
	ModelLoaded() bool
}

// composerService owns the language model handle. Composition itself is plain
// templating and never calls the model.
type composerService struct {
	model   *ModelHandle
	metrics *Metrics
}

func NewComposerService(model *ModelHandle, metrics *Metrics) ComposerService {
	return &composerService{
		model:   model,
		metrics: metrics,
	}
}

// Compose implements ComposerService.
func (c *composerService) Compose(fields models.ResumeFields) (*models.ComposedDocuments, error) {
	resume, err := render("resume.html", fields)
	if err != nil {
		return nil, err
	}

	cover, err := render("cover_letter.html", fields)
	if err != nil {
		return nil, err
	}

	c.metrics.RecordCompose()
	return &models.ComposedDocuments{
		ResumeHTML:      resume,
		CoverLetterHTML: cover,
	}, nil
}

// Generate implements ComposerService.
func (c *composerService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	model, err := c.model.Get(ctx)
	if err != nil {
		return "", err
	}
	return model.GenerateText(ctx, prompt, DefaultGenerationOptions)
}

// ModelLoaded implements ComposerService.
func (c *composerService) ModelLoaded() bool {
	return c.model.Loaded()
}

// CombineDocuments joins both views into the body of the download file.
func CombineDocuments(docs *models.ComposedDocuments) string {
	return fmt.Sprintf("--- RESUME ---\n\n%s\n\n--- COVER LETTER ---\n\n%s", docs.ResumeHTML, docs.CoverLetterHTML)
}

func render(name string, fields models.ResumeFields) (string, error) {
	var buf bytes.Buffer
	if err := composerTemplates.ExecuteTemplate(&buf, name, fields); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
