package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

var fields models.ResumeFields

func registerFieldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&fields.Name, "name", "", "full name")
	f.StringVar(&fields.Email, "email", "", "email address")
	f.StringVar(&fields.Phone, "phone", "", "phone number")
	f.StringVar(&fields.Role, "role", "", "job role, e.g. Software Engineer")
	f.StringVar(&fields.Skills, "skills", "", "skills (comma separated)")
	f.StringVar(&fields.Experience, "experience", "", "work experience or projects")
	f.StringVar(&fields.Goals, "goals", "", "career objective")
	f.StringVar(&fields.Education, "education", "", "education")
}

func runCompose(cmd *cobra.Command, args []string) error {
	// Composition never loads the model, so the handle gets a loader that is never called.
	composer := services.NewComposerService(
		services.NewModelHandle(services.GeminiLoader("", ""), nil, zap.NewNop()),
		nil,
	)

	docs, err := composer.Compose(fields)
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = services.DownloadFileName
	}
	if err := os.WriteFile(path, []byte(services.CombineDocuments(docs)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("%s Resume and cover letter written to %s\n", color.GreenString("✓"), path)
	return nil
}
