package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercopilot/verifier/internal/models"
)

func TestReportGenerateParsesValidOutput(t *testing.T) {
	gemini := &fakeGemini{response: `{
		"summary": "Name does not match the marksheet.",
		"issues": ["Name mismatch"],
		"fraud_probability": "Medium",
		"credibility_score": 55
	}`}
	svc := NewReportService(gemini, 1)

	resume := &models.ResumeRecord{Name: "John Doe"}
	docs := models.DocumentFields{"Name": "Jane Doe"}
	issues := []string{"Name mismatch"}

	report, err := svc.Generate(context.Background(), resume, docs, issues)
	require.NoError(t, err)

	assert.Equal(t, "Name does not match the marksheet.", report.Summary)
	assert.Equal(t, []string{"Name mismatch"}, report.Issues)
	assert.Equal(t, "Medium", report.FraudProbability)
	assert.Equal(t, 55, report.CredibilityScore)

	// The prompt must carry all three inputs
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "John Doe")
	assert.Contains(t, gemini.prompts[0], "Jane Doe")
	assert.Contains(t, gemini.prompts[0], "Name mismatch")
}

func TestReportGenerateRejectsNonJSONOutput(t *testing.T) {
	gemini := &fakeGemini{response: "the documents look fine to me"}
	svc := NewReportService(gemini, 1)

	report, err := svc.Generate(context.Background(), &models.ResumeRecord{}, models.DocumentFields{}, nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrMalformedModelOutput)
}

func TestReportGenerateRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			"unknown fraud probability",
			`{"summary": "s", "issues": [], "fraud_probability": "Certain", "credibility_score": 10}`,
		},
		{
			"credibility score out of range",
			`{"summary": "s", "issues": [], "fraud_probability": "Low", "credibility_score": 150}`,
		},
		{
			"non integer credibility score",
			`{"summary": "s", "issues": [], "fraud_probability": "Low", "credibility_score": 42.5}`,
		},
		{
			"missing summary",
			`{"issues": [], "fraud_probability": "Low", "credibility_score": 42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &fakeGemini{response: tt.response}
			svc := NewReportService(gemini, 1)

			report, err := svc.Generate(context.Background(), &models.ResumeRecord{}, models.DocumentFields{}, nil)
			assert.Nil(t, report)

			var violation *SchemaViolationError
			assert.ErrorAs(t, err, &violation)
		})
	}
}
