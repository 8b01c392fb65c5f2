package models

// Assessment is a fixed, named bank of multiple-choice questions.
// Banks are loaded once at startup and shared read-only by all requests.
type Assessment struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Question holds one prompt with four options. The correct index is never
// serialized to clients before submission.
type Question struct {
	ID      int      `yaml:"id" json:"id"`
	Text    string   `yaml:"question" json:"question"`
	Options []string `yaml:"options" json:"options"`
	Correct int      `yaml:"correct" json:"-"`
}

// AssessmentSummary is the list-view payload.
type AssessmentSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// QuestionView is the sanitized question payload served pre-submission.
type QuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AssessmentView is the detail payload served by GET /api/assessments/:id.
type AssessmentView struct {
	Title     string         `json:"title"`
	Questions []QuestionView `json:"questions"`
}
