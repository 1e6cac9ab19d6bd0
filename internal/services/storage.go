package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore persists uploaded documents and pipeline artifacts. Keys
// follow a fixed per-user layout:
//
//	users/{user}/resume.pdf
//	users/{user}/{original filename}
//	textract_raw/{user}/doc_raw.json
//	textract_clean/{user}/doc_clean.json
//	textract_clean/{user}/resume_clean.json
//	reports/{user}/final_report.json
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PutJSON(ctx context.Context, key string, v interface{}) error
	Get(ctx context.Context, key string) ([]byte, error)
	Bucket() string
}

func ResumeKey(userID string) string {
	return fmt.Sprintf("users/%s/resume.pdf", userID)
}

func CredentialDocKey(userID, filename string) string {
	return fmt.Sprintf("users/%s/%s", userID, filename)
}

func DocRawKey(userID string) string {
	return fmt.Sprintf("textract_raw/%s/doc_raw.json", userID)
}

func DocCleanKey(userID string) string {
	return fmt.Sprintf("textract_clean/%s/doc_clean.json", userID)
}

func ResumeCleanKey(userID string) string {
	return fmt.Sprintf("textract_clean/%s/resume_clean.json", userID)
}

func ReportKey(userID string) string {
	return fmt.Sprintf("reports/%s/final_report.json", userID)
}

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type objectStore struct {
	client s3API
	bucket string
}

func NewObjectStore(ctx context.Context, region, bucket string) (ObjectStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &objectStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// NewObjectStoreWithClient wires an existing client, used by tests.
func NewObjectStoreWithClient(client s3API, bucket string) ObjectStore {
	return &objectStore{client: client, bucket: bucket}
}

func (s *objectStore) Bucket() string {
	return s.bucket
}

func (s *objectStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *objectStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *objectStore) PutJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
