package models

type AnalyzeResponse struct {
	*AnalysisReport
	Warning string `json:"warning,omitempty"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type AnalysisListResponse struct {
	Analyses []*AnalysisReport `json:"analyses"`
}
