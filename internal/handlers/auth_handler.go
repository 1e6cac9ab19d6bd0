package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careercopilot/verifier/internal/auth"
	"careercopilot/verifier/internal/models"
	"careercopilot/verifier/internal/services"
)

type AuthHandler struct {
	faceService services.FaceVerifyService
	jwtService  *auth.JWTService
}

func NewAuthHandler(faceService services.FaceVerifyService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		faceService: faceService,
		jwtService:  jwtService,
	}
}

// HandleFaceLogin handles POST /auth/face: it forwards the selfie to the
// face-verification endpoint and issues a session token on a match.
func (h *AuthHandler) HandleFaceLogin(c *fiber.Ctx) error {
	var req models.FaceLoginRequest

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

	result, err := h.faceService.Verify(c.Context(), req.StudentID, req.Image)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !result.Match {
		message := result.Message
		if message == "" {
			message = "face does not match"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": message,
		})
	}

	token, err := h.jwtService.GenerateToken(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	return c.JSON(models.FaceLoginResponse{
		Token:      token,
		StudentID:  req.StudentID,
		Similarity: result.Similarity,
	})
}
