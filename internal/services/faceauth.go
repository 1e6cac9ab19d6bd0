package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FaceVerifyResult is the face-verification endpoint's answer for one
// student id / selfie pair.
type FaceVerifyResult struct {
	Match      bool    `json:"match"`
	Similarity float64 `json:"similarity"`
	Message    string  `json:"message"`
}

// FaceVerifyService calls the external face-verification endpoint.
type FaceVerifyService interface {
	Verify(ctx context.Context, studentID, imageB64 string) (*FaceVerifyResult, error)
}

type faceVerifyService struct {
	url    string
	client *http.Client
}

func NewFaceVerifyService(url string, timeout time.Duration) FaceVerifyService {
	return &faceVerifyService{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (f *faceVerifyService) Verify(ctx context.Context, studentID, imageB64 string) (*FaceVerifyResult, error) {
	payload, err := json.Marshal(map[string]string{
		"student_id": studentID,
		"image":      imageB64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal face verify payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build face verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("face verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{Service: "face verification", StatusCode: resp.StatusCode}
	}

	// The endpoint sometimes wraps its answer in a {"body": "<json>"}
	// envelope; unwrap before decoding.
	var envelope struct {
		Body *string `json:"body"`
		FaceVerifyResult
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode face verify response: %w", err)
	}

	result := envelope.FaceVerifyResult
	if envelope.Body != nil {
		if err := json.Unmarshal([]byte(*envelope.Body), &result); err != nil {
			return nil, fmt.Errorf("failed to decode face verify body: %w", err)
		}
	}

	return &result, nil
}
