package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API surface. The guard wraps every protected
// operation; auth endpoints stay open.
func RegisterRoutes(
	api fiber.Router,
	guard fiber.Handler,
	auth *AuthHandler,
	resume *ResumeHandler,
	assessment *AssessmentHandler,
	scores *ScoresHandler,
) {
	api.Post("/auth/signup", auth.HandleSignup)
	api.Post("/auth/login", auth.HandleLogin)
	api.Post("/auth/logout", auth.HandleLogout)
	api.Get("/auth/check", auth.HandleCheck)

	api.Get("/user/scores", guard, scores.HandleGetUserScores)
	api.Post("/upload-resume", guard, resume.HandleUpload)

	api.Get("/assessments", guard, assessment.HandleList)
	api.Get("/assessments/:id", guard, assessment.HandleGet)
	api.Post("/assessments/:id/submit", guard, assessment.HandleSubmit)
}
