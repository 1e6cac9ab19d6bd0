package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// QuestionResult is one generated set of interview questions.
type QuestionResult struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QuestionService calls the external interview-question endpoint.
type QuestionService interface {
	Generate(ctx context.Context, company, role string) (*QuestionResult, error)
}

type questionService struct {
	url    string
	client *http.Client
}

func NewQuestionService(url string, timeout time.Duration) QuestionService {
	return &questionService{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (q *questionService) Generate(ctx context.Context, company, role string) (*QuestionResult, error) {
	payload, err := json.Marshal(map[string]string{
		"company": company,
		"role":    role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal question payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build question request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := q.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("question request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{Service: "question generator", StatusCode: resp.StatusCode}
	}

	var body struct {
		Success bool   `json:"success"`
		Company string `json:"company"`
		Role    string `json:"role"`
		Content string `json:"content"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode question response: %w", err)
	}

	if !body.Success {
		return nil, &ServiceError{Service: "question generator", StatusCode: resp.StatusCode, Message: body.Error}
	}

	return &QuestionResult{
		Company: body.Company,
		Role:    body.Role,
		Content: body.Content,
	}, nil
}
