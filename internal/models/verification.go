package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	StatusQueued     VerificationStatus = "queued"
	StatusProcessing VerificationStatus = "processing"
	StatusCompleted  VerificationStatus = "completed"
	StatusFailed     VerificationStatus = "failed"
)

// Verification is one document-verification run: a resume plus a credential
// document, compared and scored. The row is the job ledger; every stage
// artifact is persisted to the object store as it is produced.
type Verification struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             string             `gorm:"type:text;not null;index" json:"user_id"`
	ResumeDocumentID   uuid.UUID          `gorm:"type:uuid;not null" json:"resume_document_id"`
	CredentialDocID    uuid.UUID          `gorm:"type:uuid;not null" json:"credential_document_id"`
	Status             VerificationStatus `gorm:"not null;default:'queued'" json:"status"`
	Issues             *string            `gorm:"type:text" json:"issues,omitempty"`
	Summary            *string            `gorm:"type:text" json:"summary,omitempty"`
	FraudProbability   *string            `gorm:"type:text" json:"fraud_probability,omitempty"`
	CredibilityScore   *int               `gorm:"type:integer" json:"credibility_score,omitempty"`
	ReportKey          *string            `gorm:"type:text" json:"report_key,omitempty"`
	ErrorMessage       *string            `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt          time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument     Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
	CredentialDocument Document `gorm:"foreignKey:CredentialDocID" json:"-"`
}

func (Verification) TableName() string {
	return "verifications"
}
