package services

import (
	"context"
	"encoding/json"
	"fmt"

	"careercopilot/verifier/internal/models"
)

const verificationReportSchema = `{
	"type": "object",
	"required": ["summary", "issues", "fraud_probability", "credibility_score"],
	"properties": {
		"summary": {"type": "string"},
		"issues": {"type": "array", "items": {"type": "string"}},
		"fraud_probability": {"type": "string", "enum": ["High", "Medium", "Low"]},
		"credibility_score": {"type": "integer", "minimum": 0, "maximum": 100}
	}
}`

// ReportService produces the final verification report from the resume
// record, the extracted document fields and the discrepancy list. Same
// strict-parse-or-fail contract as the resume parser.
type ReportService interface {
	Generate(ctx context.Context, resume *models.ResumeRecord, docs models.DocumentFields, issues []string) (*models.VerificationReport, error)
}

type reportService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewReportService(gemini GeminiService, maxRetries int) ReportService {
	return &reportService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

func (r *reportService) Generate(ctx context.Context, resume *models.ResumeRecord, docs models.DocumentFields, issues []string) (*models.VerificationReport, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resume record: %w", err)
	}
	docJSON, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document fields: %w", err)
	}

	prompt := r.promptBuilder.BuildReportPrompt(string(resumeJSON), string(docJSON), issues)

	response, err := r.gemini.GenerateJSONWithRetry(ctx, prompt, 0.3, r.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification report: %w", err)
	}

	var report models.VerificationReport
	if err := decodeModelJSON(response, verificationReportSchema, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
