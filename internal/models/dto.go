package models

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

type SubmitRequest struct {
	Answers map[string]int `json:"answers"`
}

// SubmitResult is returned by a submission. Warning is set when the score
// could not be persisted; grading itself still succeeded.
type SubmitResult struct {
	Score          float64          `json:"score"`
	CorrectCount   int              `json:"correct_count"`
	TotalQuestions int              `json:"total_questions"`
	Results        []QuestionResult `json:"results"`
	Warning        string           `json:"warning,omitempty"`
}

// ScoreSummary is one entry of the latest-scores view. Timestamp is an
// ISO-8601 string, null when the record carries no timestamp.
type ScoreSummary struct {
	AssessmentID    string  `json:"assessment_id"`
	AssessmentTitle string  `json:"assessment_title"`
	Score           float64 `json:"score"`
	CorrectCount    int     `json:"correct_count"`
	TotalQuestions  int     `json:"total_questions"`
	Timestamp       *string `json:"timestamp"`
}
