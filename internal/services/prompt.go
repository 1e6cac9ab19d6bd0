package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeExtractionPrompt creates the prompt that turns raw resume text
// into the structured resume record.
func (pb *PromptBuilder) BuildResumeExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser.
Convert the following resume into structured JSON matching exactly this shape:

{
    "name": "",
    "email": "",
    "phone": "",
    "education": [
        {"degree": "", "college": "", "year": "", "cgpa": ""}
    ],
    "skills": [],
    "projects": []
}

Rules:
1. Every field above must be present. Use an empty string or empty list when the resume does not mention it.
2. Your entire response must be ONLY the JSON object. No explanations, no text before or after it.
3. Keep year and cgpa as strings exactly as written in the resume.

Resume text:
%s`, resumeText)
}

// BuildReportPrompt creates the prompt for the final verification report.
// resumeJSON and docJSON are the serialized resume record and document
// fields; issues is the discrepancy list from reconciliation.
func (pb *PromptBuilder) BuildReportPrompt(resumeJSON, docJSON string, issues []string) string {
	return fmt.Sprintf(`You are a document verification system.

Resume Data: %s
Document Data: %s
Mismatches Found: %v

Create a clear verification report.
Include:
- Summary
- List of issues
- Fraud probability (High/Medium/Low)
- Credibility score (0-100)

Respond with ONLY this JSON object:
{
    "summary": "",
    "issues": [],
    "fraud_probability": "",
    "credibility_score": 0
}`, resumeJSON, docJSON, issues)
}
