package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"resume-analyzer/internal/models"
)

// analysisModels is the ordered fallback list: fast and cheap first, best
// quality second, stable fallback last.
var analysisModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.0-flash",
}

type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText string) (*models.ResumeAnalysis, *models.AnalysisFailure)
}

type analyzerService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	modelNames    []string
}

// NewAnalyzerService builds the analyzer. A nil gemini service means no API
// key was configured; Analyze then degrades to a structured failure.
func NewAnalyzerService(gemini GeminiService) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		modelNames:    analysisModels,
	}
}

// Analyze implements AnalyzerService. Each model gets exactly one attempt;
// the first response that parses as JSON wins. When every attempt fails the
// aggregated failure carries each attempt's error, last one highlighted.
func (a *analyzerService) Analyze(ctx context.Context, resumeText string) (*models.ResumeAnalysis, *models.AnalysisFailure) {
	if a.gemini == nil {
		return nil, &models.AnalysisFailure{
			Error: "Gemini API key not configured",
		}
	}

	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(resumeText)

	var attempts []models.ModelAttempt

	for _, modelName := range a.modelNames {
		response, err := a.gemini.GenerateText(ctx, modelName, prompt)
		if err != nil {
			log.Printf("⚠️  Model %s failed: %v\n", modelName, err)
			attempts = append(attempts, models.ModelAttempt{Model: modelName, Error: err.Error()})
			continue
		}

		var analysis models.ResumeAnalysis
		if err := json.Unmarshal([]byte(stripCodeFence(response)), &analysis); err != nil {
			log.Printf("⚠️  Model %s returned unparseable JSON: %v\n", modelName, err)
			attempts = append(attempts, models.ModelAttempt{Model: modelName, Error: err.Error()})
			continue
		}

		return &analysis, nil
	}

	return nil, &models.AnalysisFailure{
		Error:    "All Gemini models failed",
		Details:  attempts[len(attempts)-1].Error,
		Attempts: attempts,
	}
}

// stripCodeFence keeps only the first fenced block's content when the model
// wraps its answer in Markdown ``` delimiters.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "```") {
		return text
	}

	parts := strings.Split(text, "```")
	if len(parts) < 2 {
		return text
	}

	block := parts[1]
	block = strings.TrimPrefix(block, "json")
	block = strings.TrimPrefix(block, "JSON")
	return strings.TrimSpace(block)
}
