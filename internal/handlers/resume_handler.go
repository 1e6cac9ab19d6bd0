package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/services"
)

type ResumeHandler struct {
	builder *services.ResumeBuilderService
}

func NewResumeHandler(builder *services.ResumeBuilderService) *ResumeHandler {
	return &ResumeHandler{builder: builder}
}

// HandleBuildResume handles POST /resume/build.
func (h *ResumeHandler) HandleBuildResume(c *fiber.Ctx) error {
	var req models.BuildResumeRequest

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

	resume, err := h.builder.Build(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build resume",
		})
	}

	return c.JSON(models.BuildResumeResponse{Resume: resume})
}
