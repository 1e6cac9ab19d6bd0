package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careercopilot/verifier/internal/auth"
	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/repositories"
	"careercopilot/verifier/internal/services"
)

var validate = validator.New()

type VerifyHandler struct {
	verRepo repositories.VerificationRepository
	docRepo repositories.DocumentRepository
	worker  services.Worker
}

func NewVerifyHandler(
	verRepo repositories.VerificationRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *VerifyHandler {
	return &VerifyHandler{
		verRepo: verRepo,
		docRepo: docRepo,
		worker:  worker,
	}
}

// HandleVerify handles POST /verify: it creates the verification job and
// hands it to the worker; the pipeline runs asynchronously.
func (h *VerifyHandler) HandleVerify(c *fiber.Ctx) error {
	var req models.VerifyRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resumeDocID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	credDocID, err := uuid.Parse(req.CredentialDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid credential_document_id format",
		})
	}

	userID := auth.StudentID(c)

	// Verify documents exist and belong to the caller
	resumeDoc, err := h.docRepo.FindByID(resumeDocID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	credDoc, err := h.docRepo.FindByID(credDocID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Credential document not found",
		})
	}

	if resumeDoc.UserID != userID || credDoc.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Documents do not belong to the authenticated user",
		})
	}

	verification := &models.Verification{
		ID:               uuid.New(),
		UserID:           userID,
		ResumeDocumentID: resumeDocID,
		CredentialDocID:  credDocID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.verRepo.Create(verification); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create verification job",
		})
	}

	h.worker.EnqueueJob(verification.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.VerifyResponse{
		ID:     verification.ID.String(),
		Status: string(models.StatusQueued),
	})
}
