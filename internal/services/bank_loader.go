package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resume-analyzer/internal/models"
)

// optionsPerQuestion is the fixed option count every question carries.
const optionsPerQuestion = 4

// LoadBanksFile reads assessment definitions from a YAML file. When set via
// ASSESSMENTS_PATH it replaces the builtin banks at startup.
func LoadBanksFile(path string) ([]models.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read banks file: %w", err)
	}

	var file struct {
		Assessments []models.Assessment `yaml:"assessments"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse banks file: %w", err)
	}

	if len(file.Assessments) == 0 {
		return nil, fmt.Errorf("banks file %s defines no assessments", path)
	}

	for _, a := range file.Assessments {
		if a.ID == "" || a.Title == "" {
			return nil, fmt.Errorf("assessment with empty id or title in %s", path)
		}
		if len(a.Questions) == 0 {
			return nil, fmt.Errorf("assessment %s has no questions", a.ID)
		}
		for _, q := range a.Questions {
			if len(q.Options) != optionsPerQuestion {
				return nil, fmt.Errorf("assessment %s question %d: expected %d options, got %d", a.ID, q.ID, optionsPerQuestion, len(q.Options))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return nil, fmt.Errorf("assessment %s question %d: correct index out of range", a.ID, q.ID)
			}
		}
	}

	return file.Assessments, nil
}
