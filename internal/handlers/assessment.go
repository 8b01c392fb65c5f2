package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// HandleList handles GET /api/assessments
func (h *AssessmentHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"assessments": h.assessments.List(),
	})
}

// HandleGet handles GET /api/assessments/:id
func (h *AssessmentHandler) HandleGet(c *fiber.Ctx) error {
	view, err := h.assessments.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	return c.JSON(view)
}

// HandleSubmit handles POST /api/assessments/:id/submit
func (h *AssessmentHandler) HandleSubmit(c *fiber.Ctx) error {
	session, ok := SessionFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := h.assessments.Submit(c.Params("id"), session.UserID, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrAssessmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Assessment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to grade submission",
		})
	}

	return c.JSON(result)
}
