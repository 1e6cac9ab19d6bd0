package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	bucket      string
	key         string
	contentType string
	body        string
}

type fakeS3 struct {
	puts   []putCall
	getOut string
	getErr error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, putCall{
		bucket:      *params.Bucket,
		key:         *params.Key,
		contentType: *params.ContentType,
		body:        string(body),
	})
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.getOut))}, nil
}

func TestObjectStoreUpload(t *testing.T) {
	client := &fakeS3{}
	store := NewObjectStoreWithClient(client, "career-copilot-docsverification")

	err := store.Upload(context.Background(), ResumeKey("S123"), strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	require.Len(t, client.puts, 1)
	assert.Equal(t, "career-copilot-docsverification", client.puts[0].bucket)
	assert.Equal(t, "users/S123/resume.pdf", client.puts[0].key)
	assert.Equal(t, "application/pdf", client.puts[0].contentType)
	assert.Equal(t, "%PDF-1.4", client.puts[0].body)
}

func TestObjectStorePutJSON(t *testing.T) {
	client := &fakeS3{}
	store := NewObjectStoreWithClient(client, "bucket")

	err := store.PutJSON(context.Background(), DocCleanKey("S123"), map[string]string{"Name": "Jane Doe"})
	require.NoError(t, err)

	require.Len(t, client.puts, 1)
	assert.Equal(t, "textract_clean/S123/doc_clean.json", client.puts[0].key)
	assert.Equal(t, "application/json", client.puts[0].contentType)
	assert.JSONEq(t, `{"Name": "Jane Doe"}`, client.puts[0].body)
}

func TestObjectStoreGet(t *testing.T) {
	client := &fakeS3{getOut: "file contents"}
	store := NewObjectStoreWithClient(client, "bucket")

	data, err := store.Get(context.Background(), "users/S123/marksheet.pdf")
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(data))
}

func TestKeyLayoutIsPerUser(t *testing.T) {
	assert.Equal(t, "users/S123/resume.pdf", ResumeKey("S123"))
	assert.Equal(t, "users/S123/marksheet.pdf", CredentialDocKey("S123", "marksheet.pdf"))
	assert.Equal(t, "textract_raw/S123/doc_raw.json", DocRawKey("S123"))
	assert.Equal(t, "textract_clean/S123/doc_clean.json", DocCleanKey("S123"))
	assert.Equal(t, "textract_clean/S123/resume_clean.json", ResumeCleanKey("S123"))
	assert.Equal(t, "reports/S123/final_report.json", ReportKey("S123"))
}
