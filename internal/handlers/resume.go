package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/services"
)

type ResumeHandler struct {
	storageService services.StorageService
	extractor      services.ExtractorService
	analyzer       services.AnalyzerService
	maxFileSize    int64
}

func NewResumeHandler(
	storageService services.StorageService,
	extractor services.ExtractorService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		storageService: storageService,
		extractor:      extractor,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /api/upload-resume
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}

	if !services.IsAllowedFile(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File too large",
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	resumeText, err := h.extractor.ExtractText(filePath)
	if err != nil {
		h.cleanup(filename)
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file type. Please upload PDF or TXT",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to extract resume text",
		})
	}

	analysis, failure := h.analyzer.Analyze(c.Context(), resumeText)
	if failure != nil {
		// Data-level failure, not an HTTP one
		return c.JSON(fiber.Map{
			"success":  true,
			"analysis": failure,
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"analysis": analysis,
	})
}

func (h *ResumeHandler) cleanup(filename string) {
	_ = h.storageService.DeleteFile(filename)
}
