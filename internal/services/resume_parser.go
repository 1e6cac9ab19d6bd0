package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"careercopilot/verifier/internal/models"
)

// resumeRecordSchema is the contract the structured-record generator holds
// the model to. Parsing is strict: output that is not JSON fails with
// ErrMalformedModelOutput, JSON of the wrong shape fails with
// SchemaViolationError. There is no fallback to empty fields.
const resumeRecordSchema = `{
	"type": "object",
	"required": ["name", "email", "phone", "education", "skills", "projects"],
	"properties": {
		"name": {"type": "string"},
		"email": {"type": "string"},
		"phone": {"type": "string"},
		"education": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["degree", "college", "year", "cgpa"],
				"properties": {
					"degree": {"type": "string"},
					"college": {"type": "string"},
					"year": {"type": "string"},
					"cgpa": {"type": "string"}
				}
			}
		},
		"skills": {"type": "array", "items": {"type": "string"}},
		"projects": {"type": "array", "items": {"type": "string"}}
	}
}`

// ResumeParserService turns free resume text into the normalized record
// through a single constrained generative call.
type ResumeParserService interface {
	Parse(ctx context.Context, resumeText string) (*models.ResumeRecord, error)
}

type resumeParserService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewResumeParserService(gemini GeminiService, maxRetries int) ResumeParserService {
	return &resumeParserService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

func (r *resumeParserService) Parse(ctx context.Context, resumeText string) (*models.ResumeRecord, error) {
	prompt := r.promptBuilder.BuildResumeExtractionPrompt(resumeText)

	response, err := r.gemini.GenerateJSONWithRetry(ctx, prompt, 0.2, r.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate resume record: %w", err)
	}

	var record models.ResumeRecord
	if err := decodeModelJSON(response, resumeRecordSchema, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// decodeModelJSON strictly decodes a generative-model response into target:
// extract the JSON payload, validate it against the declared schema, then
// unmarshal.
func decodeModelJSON(response, schema string, target interface{}) error {
	jsonStr := extractJSON(response)

	if !json.Valid([]byte(jsonStr)) {
		return fmt.Errorf("%w: %.200s", ErrMalformedModelOutput, response)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(jsonStr),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}

	if !result.Valid() {
		violation := &SchemaViolationError{}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			violation.Violations = append(violation.Violations, fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return violation
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}

	return nil
}

// extractJSON pulls the JSON object or array out of text that might wrap it
// in markdown fences or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}
