package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/repositories"
)

type fakeVerificationRepo struct {
	verification *models.Verification
	statuses     []models.VerificationStatus
	result       *repositories.VerificationUpdateData
	errorMessage string
}

func (f *fakeVerificationRepo) Create(v *models.Verification) error { return nil }

func (f *fakeVerificationRepo) FindByID(id uuid.UUID) (*models.Verification, error) {
	if f.verification == nil {
		return nil, errors.New("verification not found")
	}
	return f.verification, nil
}

func (f *fakeVerificationRepo) UpdateStatus(id uuid.UUID, status models.VerificationStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeVerificationRepo) UpdateResult(id uuid.UUID, result *repositories.VerificationUpdateData) error {
	f.result = result
	f.statuses = append(f.statuses, models.StatusCompleted)
	return nil
}

func (f *fakeVerificationRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	f.errorMessage = errorMsg
	f.statuses = append(f.statuses, models.StatusFailed)
	return nil
}

func (f *fakeVerificationRepo) FindPendingJobs(limit int) ([]models.Verification, error) {
	return nil, nil
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*models.Document
}

func (f *fakeDocumentRepo) Create(doc *models.Document) error { return nil }

func (f *fakeDocumentRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return doc, nil
}

func (f *fakeDocumentRepo) FindByUser(userID string) ([]models.Document, error) { return nil, nil }

type fakeStore struct {
	savedKeys   []string
	savedValues map[string]interface{}
	putErr      error
}

func (f *fakeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	return nil
}

func (f *fakeStore) PutJSON(ctx context.Context, key string, v interface{}) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.savedValues == nil {
		f.savedValues = map[string]interface{}{}
	}
	f.savedKeys = append(f.savedKeys, key)
	f.savedValues[key] = v
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (f *fakeStore) Bucket() string { return "bucket" }

type fakeDocExtractor struct {
	blocks []types.Block
	err    error
	called bool
}

func (f *fakeDocExtractor) AnalyzeForms(ctx context.Context, objectKey string) ([]types.Block, error) {
	f.called = true
	return f.blocks, f.err
}

type fakeTextExtractor struct {
	text   string
	err    error
	called bool
}

func (f *fakeTextExtractor) ExtractText(ctx context.Context, objectKey string) (string, error) {
	f.called = true
	return f.text, f.err
}

type fakeResumeParser struct {
	record *models.ResumeRecord
	err    error
	called bool
}

func (f *fakeResumeParser) Parse(ctx context.Context, resumeText string) (*models.ResumeRecord, error) {
	f.called = true
	return f.record, f.err
}

type fakeReportService struct {
	report *models.VerificationReport
	err    error
	called bool
	issues []string
}

func (f *fakeReportService) Generate(ctx context.Context, resume *models.ResumeRecord, docs models.DocumentFields, issues []string) (*models.VerificationReport, error) {
	f.called = true
	f.issues = issues
	return f.report, f.err
}

type verifierFixture struct {
	verRepo        *fakeVerificationRepo
	store          *fakeStore
	docExtractor   *fakeDocExtractor
	textExtractor  *fakeTextExtractor
	resumeParser   *fakeResumeParser
	reportService  *fakeReportService
	service        VerifierService
	verificationID uuid.UUID
}

func newVerifierFixture() *verifierFixture {
	verificationID := uuid.New()
	resumeDocID := uuid.New()
	credDocID := uuid.New()

	verRepo := &fakeVerificationRepo{
		verification: &models.Verification{
			ID:               verificationID,
			UserID:           "user1",
			ResumeDocumentID: resumeDocID,
			CredentialDocID:  credDocID,
			Status:           models.StatusQueued,
		},
	}
	docRepo := &fakeDocumentRepo{
		docs: map[uuid.UUID]*models.Document{
			resumeDocID: {ID: resumeDocID, UserID: "user1", Kind: models.KindResume, ObjectKey: "users/user1/resume.pdf"},
			credDocID:   {ID: credDocID, UserID: "user1", Kind: models.KindCredentialDocument, ObjectKey: "users/user1/marksheet.pdf"},
		},
	}

	store := &fakeStore{}
	docExtractor := &fakeDocExtractor{
		blocks: []types.Block{
			keyBlock("k1", []string{"w1"}, []string{"v1"}),
			valueBlock("v1", []string{"w2", "w3"}),
			wordBlock("w1", "Name"),
			wordBlock("w2", "Jane"),
			wordBlock("w3", "Doe"),
		},
	}
	textExtractor := &fakeTextExtractor{text: "Jane Doe\nB.Tech"}
	resumeParser := &fakeResumeParser{
		record: &models.ResumeRecord{
			Name:      "Jane Doe",
			Education: []models.EducationEntry{{Year: "2020", CGPA: "8.5"}},
		},
	}
	reportService := &fakeReportService{
		report: &models.VerificationReport{
			Summary:          "ok",
			Issues:           []string{},
			FraudProbability: "Low",
			CredibilityScore: 92,
		},
	}

	return &verifierFixture{
		verRepo:        verRepo,
		store:          store,
		docExtractor:   docExtractor,
		textExtractor:  textExtractor,
		resumeParser:   resumeParser,
		reportService:  reportService,
		verificationID: verificationID,
		service: NewVerifierService(
			verRepo,
			docRepo,
			store,
			docExtractor,
			textExtractor,
			resumeParser,
			reportService,
		),
	}
}

func TestVerifyDocumentsPersistsEveryStageArtifact(t *testing.T) {
	f := newVerifierFixture()

	err := f.service.VerifyDocuments(context.Background(), f.verificationID)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"textract_raw/user1/doc_raw.json",
		"textract_clean/user1/doc_clean.json",
		"textract_clean/user1/resume_clean.json",
		"reports/user1/final_report.json",
	}, f.store.savedKeys)

	fields, ok := f.store.savedValues["textract_clean/user1/doc_clean.json"].(models.DocumentFields)
	require.True(t, ok)
	assert.Equal(t, models.DocumentFields{"Name": "Jane Doe"}, fields)

	require.NotNil(t, f.verRepo.result)
	assert.Equal(t, "ok", *f.verRepo.result.Summary)
	assert.Equal(t, "Low", *f.verRepo.result.FraudProbability)
	assert.Equal(t, 92, *f.verRepo.result.CredibilityScore)
	assert.Equal(t, "reports/user1/final_report.json", *f.verRepo.result.ReportKey)

	assert.Equal(t, []models.VerificationStatus{models.StatusProcessing, models.StatusCompleted}, f.verRepo.statuses)
}

func TestVerifyDocumentsPassesDiscrepanciesToReport(t *testing.T) {
	f := newVerifierFixture()
	// Claimed year disagrees with the (absent) document year field
	f.resumeParser.record = &models.ResumeRecord{
		Name:      "John Doe",
		Education: []models.EducationEntry{{Year: "2019"}},
	}

	err := f.service.VerifyDocuments(context.Background(), f.verificationID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name mismatch", "Year of Passing mismatch"}, f.reportService.issues)
}

func TestVerifyDocumentsAbortsWhenExtractionFails(t *testing.T) {
	f := newVerifierFixture()
	f.docExtractor.err = errors.New("service unavailable")

	err := f.service.VerifyDocuments(context.Background(), f.verificationID)
	require.Error(t, err)

	// Nothing downstream of the failed stage may run
	assert.False(t, f.textExtractor.called)
	assert.False(t, f.resumeParser.called)
	assert.False(t, f.reportService.called)
	assert.Empty(t, f.store.savedKeys)

	assert.Contains(t, f.verRepo.errorMessage, "service unavailable")
	assert.Equal(t, []models.VerificationStatus{models.StatusProcessing, models.StatusFailed}, f.verRepo.statuses)
}

func TestVerifyDocumentsAbortsWhenResumeNormalizationFails(t *testing.T) {
	f := newVerifierFixture()
	f.resumeParser.err = ErrMalformedModelOutput

	err := f.service.VerifyDocuments(context.Background(), f.verificationID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedModelOutput)

	assert.False(t, f.reportService.called)
	// Raw and clean document artifacts were persisted before the failure
	assert.Equal(t, []string{
		"textract_raw/user1/doc_raw.json",
		"textract_clean/user1/doc_clean.json",
	}, f.store.savedKeys)
}

func TestVerifyDocumentsAbortsWhenPersistenceFails(t *testing.T) {
	f := newVerifierFixture()
	f.store.putErr = errors.New("bucket unreachable")

	err := f.service.VerifyDocuments(context.Background(), f.verificationID)
	require.Error(t, err)

	assert.False(t, f.reportService.called)
	assert.Contains(t, f.verRepo.errorMessage, "bucket unreachable")
}
