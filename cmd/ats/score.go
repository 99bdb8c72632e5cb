package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

func runScore(cmd *cobra.Command, args []string) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(level, "console")
	defer log.Sync()

	analyzer := services.NewAnalyzerService(
		services.NewTextExtractor(services.NewPDFParserService()),
		nil,
		nil,
		log,
	)

	docs := make([]models.UploadedDocument, 0, len(args))
	for _, path := range args {
		docs = append(docs, readLocalFile(path))
	}

	report, err := analyzer.Analyze(context.Background(), services.ParseSkills(skillsInput), docs)
	if err != nil {
		return err
	}

	printReport(report)

	if len(report.Failures) > 0 {
		return fmt.Errorf("%d of %d files could not be read", len(report.Failures), len(docs))
	}
	return nil
}

func readLocalFile(path string) models.UploadedDocument {
	name := filepath.Base(path)
	doc := models.UploadedDocument{
		Name: name,
		Kind: services.ResolveKind("", name),
	}

	info, err := os.Stat(path)
	if err != nil {
		doc.Err = err
		return doc
	}
	if maxFileSize > 0 && info.Size() > maxFileSize {
		doc.Err = fmt.Errorf("%w: max size %d bytes", services.ErrFileTooLarge, maxFileSize)
		return doc
	}

	content, err := os.ReadFile(path)
	if err != nil {
		doc.Err = err
		return doc
	}
	doc.Content = content
	return doc
}

func printReport(report *models.AnalysisReport) {
	fmt.Println(color.New(color.Bold, color.Underline).Sprint("Results"))
	fmt.Printf("Skills: %s\n", strings.Join(report.Skills, ", "))
	fmt.Println(strings.Repeat("═", 50))

	for _, result := range report.Results {
		fmt.Printf("%s: %s match\n", color.New(color.Bold).Sprint(result.Name), scoreColor(result.Score))
		if verbose {
			if len(result.Matched) > 0 {
				fmt.Printf("  %s %s\n", color.GreenString("✓"), strings.Join(result.Matched, ", "))
			}
			if len(result.Missing) > 0 {
				fmt.Printf("  %s %s\n", color.RedString("✗"), strings.Join(result.Missing, ", "))
			}
		}
	}

	for _, failure := range report.Failures {
		fmt.Printf("%s %s\n", color.YellowString("⚠"), failure.Reason)
	}
}

func scoreColor(score float64) string {
	text := fmt.Sprintf("%.2f%%", score)
	switch {
	case score >= 75:
		return color.GreenString(text)
	case score >= 40:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}
