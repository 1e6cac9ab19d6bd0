package handlers

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careercopilot/verifier/internal/auth"
	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/repositories"
	"careercopilot/verifier/internal/services"
)

type UploadHandler struct {
	docRepo     repositories.DocumentRepository
	store       services.ObjectStore
	maxFileSize int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	store services.ObjectStore,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:     docRepo,
		store:       store,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload accepts multipart fields "resume" and "credential_document",
// streams each to the object store under the caller's key namespace and
// records them.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	userID := auth.StudentID(c)
	files := form.File

	var responses []models.UploadResponse

	// Process the resume file
	if resumeFiles, exists := files["resume"]; exists && len(resumeFiles) > 0 {
		resumeFile := resumeFiles[0]

		if resumeFile.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		doc, err := h.saveDocument(c, resumeFile, userID, models.KindResume, services.ResumeKey(userID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save resume: %v", err),
			})
		}

		responses = append(responses, models.UploadResponse{
			ID:           doc.ID.String(),
			OriginalName: doc.OriginalFileName,
			Kind:         string(doc.Kind),
			ObjectKey:    doc.ObjectKey,
		})
	}

	// Process the credential document (marksheet / degree certificate)
	if docFiles, exists := files["credential_document"]; exists && len(docFiles) > 0 {
		credFile := docFiles[0]

		if credFile.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Credential document too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		key := services.CredentialDocKey(userID, credFile.Filename)
		doc, err := h.saveDocument(c, credFile, userID, models.KindCredentialDocument, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save credential document: %v", err),
			})
		}

		responses = append(responses, models.UploadResponse{
			ID:           doc.ID.String(),
			OriginalName: doc.OriginalFileName,
			Kind:         string(doc.Kind),
			ObjectKey:    doc.ObjectKey,
		})
	}

	if len(responses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Please upload 'resume' and/or 'credential_document'.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Files uploaded successfully",
		"documents": responses,
	})
}

func (h *UploadHandler) saveDocument(
	c *fiber.Ctx,
	file *multipart.FileHeader,
	userID string,
	kind models.DocumentKind,
	objectKey string,
) (*models.Document, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.store.Upload(c.Context(), objectKey, src, contentType); err != nil {
		return nil, err
	}

	doc := models.Document{
		ID:               uuid.New(),
		UserID:           userID,
		OriginalFileName: file.Filename,
		Kind:             kind,
		ObjectKey:        objectKey,
		SizeBytes:        file.Size,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
