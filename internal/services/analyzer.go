package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/repositories"
)

var (
	ErrNoDocuments = errors.New("please upload at least one resume file")
	ErrNoSkills    = errors.New("please enter at least one required skill")
)

type AnalyzerService interface {
	Analyze(ctx context.Context, skills []string, docs []models.UploadedDocument) (*models.AnalysisReport, error)
}

type analyzerService struct {
	extractor TextExtractor
	recorder  repositories.AnalysisRecorder
	metrics   *Metrics
	log       *zap.Logger
	now       func() time.Time
}

func NewAnalyzerService(
	extractor TextExtractor,
	recorder repositories.AnalysisRecorder,
	metrics *Metrics,
	log *zap.Logger,
) AnalyzerService {
	if recorder == nil {
		recorder = repositories.NewNopRecorder()
	}
	return &analyzerService{
		extractor: extractor,
		recorder:  recorder,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// Analyze scores every document against skills, one at a time in upload order. A
// document that cannot be read becomes a failure entry and the batch carries on.
func (a *analyzerService) Analyze(ctx context.Context, skills []string, docs []models.UploadedDocument) (*models.AnalysisReport, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}

	report := &models.AnalysisReport{
		ID:        uuid.New(),
		Skills:    skills,
		Results:   []models.MatchResult{},
		Failures:  []models.DocumentFailure{},
		CreatedAt: a.now(),
	}
	log := a.log.With(zap.String("analysis_id", report.ID.String()))
	log.Info("starting analysis", zap.Int("documents", len(docs)), zap.Strings("skills", skills))

	results := make([]models.MatchResult, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analysis cancelled: %w", err)
		}

		text, err := a.readDocument(doc)
		if err != nil {
			log.Warn("could not read document", zap.String("document", doc.Name), zap.Error(err))
			a.metrics.RecordDocument(doc.Kind.String(), "failed")
			report.Failures = append(report.Failures, models.DocumentFailure{
				Name:   doc.Name,
				Reason: fmt.Sprintf("could not read %s: %v", doc.Name, err),
			})
			continue
		}

		matched, missing := MatchedSkills(text, skills)
		score := scorePercent(len(matched), len(skills))
		a.metrics.RecordDocument(doc.Kind.String(), "scored")
		a.metrics.RecordScore(score)

		log.Debug("document scored", zap.String("document", doc.Name), zap.Float64("score", score))
		results = append(results, models.MatchResult{
			Name:    doc.Name,
			Score:   score,
			Matched: matched,
			Missing: missing,
		})
	}

	report.Results = RankResults(results)

	if err := a.recorder.Record(report); err != nil {
		log.Warn("failed to record analysis", zap.Error(err))
	}

	log.Info("analysis completed", zap.Int("scored", len(report.Results)), zap.Int("failed", len(report.Failures)))
	return report, nil
}

func (a *analyzerService) readDocument(doc models.UploadedDocument) (string, error) {
	if doc.Err != nil {
		return "", doc.Err
	}
	return a.extractor.Extract(doc)
}
