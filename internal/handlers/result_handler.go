package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careercopilot/verifier/internal/auth"
	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/repositories"
)

type ResultHandler struct {
	verRepo repositories.VerificationRepository
}

func NewResultHandler(verRepo repositories.VerificationRepository) *ResultHandler {
	return &ResultHandler{
		verRepo: verRepo,
	}
}

// HandleGetResult handles GET /verify/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	verificationID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid verification ID format",
		})
	}

	verification, err := h.verRepo.FindByID(verificationID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Verification not found",
		})
	}

	if verification.UserID != auth.StudentID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Verification does not belong to the authenticated user",
		})
	}

	response := models.ResultResponse{
		ID:     verification.ID.String(),
		Status: string(verification.Status),
	}

	if verification.Status == models.StatusCompleted {
		report := &models.VerificationReport{
			Issues: []string{},
		}
		if verification.Summary != nil {
			report.Summary = *verification.Summary
		}
		if verification.FraudProbability != nil {
			report.FraudProbability = *verification.FraudProbability
		}
		if verification.CredibilityScore != nil {
			report.CredibilityScore = *verification.CredibilityScore
		}
		if verification.Issues != nil && *verification.Issues != "" {
			report.Issues = strings.Split(*verification.Issues, "\n")
		}
		response.Result = report
	}

	if verification.Status == models.StatusFailed && verification.ErrorMessage != nil {
		response.ErrorMessage = verification.ErrorMessage
	}

	return c.JSON(response)
}
