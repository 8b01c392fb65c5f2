package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
	"resume-analyzer/internal/services"
)

type AuthHandler struct {
	userRepo   repositories.UserRepository
	sessions   services.SessionStore
	cookieName string
	sessionTTL time.Duration
}

func NewAuthHandler(
	userRepo repositories.UserRepository,
	sessions services.SessionStore,
	cookieName string,
	sessionTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		sessions:   sessions,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// HandleSignup handles POST /api/auth/signup
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	if email == "" || req.Password == "" || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email, password, and name are required",
		})
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Signup failed",
		})
	}

	if err := h.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Signup failed: " + err.Error(),
		})
	}

	if err := h.startSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start session",
		})
	}

	return c.JSON(models.AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User: models.UserPayload{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// HandleLogin handles POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	user, err := h.userRepo.FindByEmail(email)
	if err != nil || !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err := h.startSession(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start session",
		})
	}

	return c.JSON(models.AuthResponse{
		Success: true,
		Message: "Login successful",
		User: models.UserPayload{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// HandleLogout handles POST /api/auth/logout
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookieName); token != "" {
		// Best effort; an expired session is as good as a destroyed one
		_ = h.sessions.Destroy(c.Context(), token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// HandleCheck handles GET /api/auth/check
func (h *AuthHandler) HandleCheck(c *fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	session, err := h.sessions.Get(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"authenticated": false,
		})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"user": models.UserPayload{
			ID:    session.UserID,
			Email: session.Email,
			Name:  session.Name,
		},
	})
}

func (h *AuthHandler) startSession(c *fiber.Ctx, user *models.User) error {
	token, err := h.sessions.Create(c.Context(), services.Session{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
