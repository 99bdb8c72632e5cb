package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchResult is the score of one document against the requested skills.
type MatchResult struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// DocumentFailure reports a document that could not be read. It never aborts the
// rest of the batch.
type DocumentFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type AnalysisReport struct {
	ID        uuid.UUID         `json:"id"`
	Skills    []string          `json:"skills"`
	Results   []MatchResult     `json:"results"`
	Failures  []DocumentFailure `json:"failures"`
	CreatedAt time.Time         `json:"created_at"`
}

// AnalysisRun is the persisted form of an AnalysisReport.
type AnalysisRun struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Skills    []string          `gorm:"type:jsonb;serializer:json" json:"skills"`
	Results   []MatchResult     `gorm:"type:jsonb;serializer:json" json:"results"`
	Failures  []DocumentFailure `gorm:"type:jsonb;serializer:json" json:"failures"`
	CreatedAt time.Time         `json:"created_at"`
}

func (AnalysisRun) TableName() string {
	return "analysis_runs"
}

func NewAnalysisRun(report *AnalysisReport) *AnalysisRun {
	return &AnalysisRun{
		ID:        report.ID,
		Skills:    report.Skills,
		Results:   report.Results,
		Failures:  report.Failures,
		CreatedAt: report.CreatedAt,
	}
}

func (r *AnalysisRun) Report() *AnalysisReport {
	return &AnalysisReport{
		ID:        r.ID,
		Skills:    r.Skills,
		Results:   r.Results,
		Failures:  r.Failures,
		CreatedAt: r.CreatedAt,
	}
}
