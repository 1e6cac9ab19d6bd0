package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentKind string

const (
	KindResume             DocumentKind = "resume"
	KindCredentialDocument DocumentKind = "credential_document"
)

// Document is one uploaded file. The binary itself lives in the object
// store under ObjectKey; this row only records it.
type Document struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           string       `gorm:"type:text;not null;index" json:"user_id"`
	OriginalFileName string       `gorm:"type:text" json:"original_filename"`
	Kind             DocumentKind `gorm:"type:text;not null" json:"kind"`
	ObjectKey        string       `gorm:"type:text;not null" json:"object_key"`
	SizeBytes        int64        `gorm:"type:bigint" json:"size_bytes"`
	CreatedAt        time.Time    `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
