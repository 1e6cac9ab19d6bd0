package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercopilot/verifier/internal/models"
)

type VerificationRepository interface {
	Create(verification *models.Verification) error
	FindByID(id uuid.UUID) (*models.Verification, error)
	UpdateStatus(id uuid.UUID, status models.VerificationStatus) error
	UpdateResult(id uuid.UUID, result *VerificationUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Verification, error)
}

type VerificationUpdateData struct {
	Issues           []string
	Summary          *string
	FraudProbability *string
	CredibilityScore *int
	ReportKey        *string
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(verification *models.Verification) error {
	if err := r.db.Create(&verification).Error; err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}

	return nil
}

func (r *verificationRepository) FindByID(id uuid.UUID) (*models.Verification, error) {
	var verification models.Verification
	if err := r.db.Where("id = ?", id).First(&verification).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("verification not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find verification: %w", err)
	}

	return &verification, nil
}

func (r *verificationRepository) UpdateStatus(id uuid.UUID, status models.VerificationStatus) error {
	result := r.db.Model(&models.Verification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("verification not found")
	}

	return nil
}

func (r *verificationRepository) UpdateResult(id uuid.UUID, data *VerificationUpdateData) error {
	issues := strings.Join(data.Issues, "\n")
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"issues":     issues,
		"updated_at": time.Now(),
	}

	if data.Summary != nil {
		updates["summary"] = *data.Summary
	}
	if data.FraudProbability != nil {
		updates["fraud_probability"] = *data.FraudProbability
	}
	if data.CredibilityScore != nil {
		updates["credibility_score"] = *data.CredibilityScore
	}
	if data.ReportKey != nil {
		updates["report_key"] = *data.ReportKey
	}

	result := r.db.Model(&models.Verification{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("verification not found")
	}

	return nil
}

func (r *verificationRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Verification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("verification not found")
	}

	return nil
}

func (r *verificationRepository) FindPendingJobs(limit int) ([]models.Verification, error) {
	var verifications []models.Verification
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&verifications).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending verifications: %w", err)
	}

	return verifications, nil
}
