package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// HandleGenerateQuestions handles POST /questions.
func (h *QuestionHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.QuestionRequest

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

	result, err := h.questionService.Generate(c.Context(), req.Company, req.Role)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.QuestionResponse{
		Company: result.Company,
		Role:    result.Role,
		Content: result.Content,
	})
}
