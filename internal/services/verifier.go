package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/google/uuid"

	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/repositories"
)

// VerifierService runs one verification: a strictly ordered pipeline over a
// resume and a credential document. Every stage's artifact is saved to the
// object store as soon as it is produced, so a crashed or aborted run leaves
// inspectable partial results. A stage failure aborts the run; there is no
// retry or compensation at this level.
type VerifierService interface {
	VerifyDocuments(ctx context.Context, verificationID uuid.UUID) error
}

type verifierService struct {
	verRepo       repositories.VerificationRepository
	docRepo       repositories.DocumentRepository
	store         ObjectStore
	docExtractor  DocumentExtractor
	textExtractor TextExtractor
	resumeParser  ResumeParserService
	reconciler    *Reconciler
	reportService ReportService
}

func NewVerifierService(
	verRepo repositories.VerificationRepository,
	docRepo repositories.DocumentRepository,
	store ObjectStore,
	docExtractor DocumentExtractor,
	textExtractor TextExtractor,
	resumeParser ResumeParserService,
	reportService ReportService,
) VerifierService {
	return &verifierService{
		verRepo:       verRepo,
		docRepo:       docRepo,
		store:         store,
		docExtractor:  docExtractor,
		textExtractor: textExtractor,
		resumeParser:  resumeParser,
		reconciler:    NewReconciler(),
		reportService: reportService,
	}
}

// rawExtraction mirrors the extraction service's response shape so the
// persisted raw artifact looks like what the service returned.
type rawExtraction struct {
	Blocks []types.Block `json:"Blocks"`
}

func (v *verifierService) VerifyDocuments(ctx context.Context, verificationID uuid.UUID) error {
	if err := v.verRepo.UpdateStatus(verificationID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting verification %s\n", verificationID)

	verification, err := v.verRepo.FindByID(verificationID)
	if err != nil {
		v.verRepo.UpdateError(verificationID, err.Error())
		return fmt.Errorf("failed to get verification: %w", err)
	}
	userID := verification.UserID

	resumeDoc, err := v.docRepo.FindByID(verification.ResumeDocumentID)
	if err != nil {
		return v.fail(verificationID, "resume document not found", err)
	}

	credDoc, err := v.docRepo.FindByID(verification.CredentialDocID)
	if err != nil {
		return v.fail(verificationID, "credential document not found", err)
	}

	// Stage 1: credential document forms extraction. A failure here stops
	// the run before reconciliation: partial fields are not trustworthy.
	log.Println("📄 Extracting credential document fields...")
	blocks, err := v.docExtractor.AnalyzeForms(ctx, credDoc.ObjectKey)
	if err != nil {
		return v.fail(verificationID, "document extraction failed", err)
	}

	if err := v.store.PutJSON(ctx, DocRawKey(userID), rawExtraction{Blocks: blocks}); err != nil {
		return v.fail(verificationID, "failed to persist raw extraction", err)
	}

	// Stage 2: clean key/value fields.
	docFields := ParseKeyValues(blocks)
	if err := v.store.PutJSON(ctx, DocCleanKey(userID), docFields); err != nil {
		return v.fail(verificationID, "failed to persist document fields", err)
	}

	// Stage 3: resume text extraction.
	log.Println("📄 Extracting resume text...")
	resumeText, err := v.textExtractor.ExtractText(ctx, resumeDoc.ObjectKey)
	if err != nil {
		return v.fail(verificationID, "resume text extraction failed", err)
	}

	// Stage 4: normalize the resume into the structured record.
	log.Println("🤖 Normalizing resume with LLM...")
	record, err := v.resumeParser.Parse(ctx, resumeText)
	if err != nil {
		return v.fail(verificationID, "resume normalization failed", err)
	}

	if err := v.store.PutJSON(ctx, ResumeCleanKey(userID), record); err != nil {
		return v.fail(verificationID, "failed to persist resume record", err)
	}

	// Stage 5: reconcile claimed vs documented fields.
	issues := v.reconciler.Compare(record, docFields)
	log.Printf("⚠ Mismatches found: %d\n", len(issues))

	// Stage 6: final verification report.
	log.Println("🤖 Generating verification report...")
	report, err := v.reportService.Generate(ctx, record, docFields, issues)
	if err != nil {
		return v.fail(verificationID, "report generation failed", err)
	}

	reportKey := ReportKey(userID)
	if err := v.store.PutJSON(ctx, reportKey, report); err != nil {
		return v.fail(verificationID, "failed to persist report", err)
	}

	// Stage 7: record the outcome on the job row.
	updateData := &repositories.VerificationUpdateData{
		Issues:           issues,
		Summary:          &report.Summary,
		FraudProbability: &report.FraudProbability,
		CredibilityScore: &report.CredibilityScore,
		ReportKey:        &reportKey,
	}
	if err := v.verRepo.UpdateResult(verificationID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Verification %s completed\n", verificationID)
	return nil
}

func (v *verifierService) fail(id uuid.UUID, stage string, err error) error {
	v.verRepo.UpdateError(id, fmt.Sprintf("%s: %v", stage, err))
	return fmt.Errorf("%s: %w", stage, err)
}
