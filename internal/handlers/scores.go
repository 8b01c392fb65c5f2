package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/services"
)

type ScoresHandler struct {
	scores services.ScoreService
}

func NewScoresHandler(scores services.ScoreService) *ScoresHandler {
	return &ScoresHandler{scores: scores}
}

// HandleGetUserScores handles GET /api/user/scores
func (h *ScoresHandler) HandleGetUserScores(c *fiber.Ctx) error {
	session, ok := SessionFromCtx(c)
	if !ok {
		return unauthenticated(c)
	}

	summaries, err := h.scores.LatestScores(session.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch scores",
		})
	}

	return c.JSON(fiber.Map{
		"scores": summaries,
	})
}
