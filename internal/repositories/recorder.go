package repositories

import (
	"github.com/google/uuid"

	"alfredoptarigan/resume-ats/internal/models"
)

// AnalysisRecorder stores and retrieves analysis reports. The analyzer depends on
// this rather than on the repository so history can be switched off.
type AnalysisRecorder interface {
	Record(report *models.AnalysisReport) error
	Get(id uuid.UUID) (*models.AnalysisReport, error)
	Recent(limit int) ([]*models.AnalysisReport, error)
	Enabled() bool
}

type repositoryRecorder struct {
	repo AnalysisRepository
}

func NewRepositoryRecorder(repo AnalysisRepository) AnalysisRecorder {
	return &repositoryRecorder{repo: repo}
}

func (r *repositoryRecorder) Record(report *models.AnalysisReport) error {
	return r.repo.Create(models.NewAnalysisRun(report))
}

func (r *repositoryRecorder) Get(id uuid.UUID) (*models.AnalysisReport, error) {
	run, err := r.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return run.Report(), nil
}

func (r *repositoryRecorder) Recent(limit int) ([]*models.AnalysisReport, error) {
	runs, err := r.repo.FindRecent(limit)
	if err != nil {
		return nil, err
	}
	reports := make([]*models.AnalysisReport, 0, len(runs))
	for i := range runs {
		reports = append(reports, runs[i].Report())
	}
	return reports, nil
}

func (r *repositoryRecorder) Enabled() bool { return true }

// nopRecorder is used when history is disabled.
type nopRecorder struct{}

func NewNopRecorder() AnalysisRecorder { return nopRecorder{} }

func (nopRecorder) Record(*models.AnalysisReport) error { return nil }

func (nopRecorder) Get(uuid.UUID) (*models.AnalysisReport, error) {
	return nil, ErrAnalysisNotFound
}

func (nopRecorder) Recent(int) ([]*models.AnalysisReport, error) { return nil, nil }

func (nopRecorder) Enabled() bool { return false }
