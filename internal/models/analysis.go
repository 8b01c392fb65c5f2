package models

// ResumeAnalysis is the JSON object the model is asked to produce.
type ResumeAnalysis struct {
	OverallAssessment  string              `json:"overall_assessment"`
	Strengths          []string            `json:"strengths"`
	Improvements       []string            `json:"improvements"`
	MissingSkills      []string            `json:"missing_skills"`
	RecommendedCourses []RecommendedCourse `json:"recommended_courses"`
	CareerSuggestions  []string            `json:"career_suggestions"`
}

type RecommendedCourse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// AnalysisFailure is the data-level error payload returned when analysis
// cannot run or every model attempt failed. It is not an HTTP failure.
type AnalysisFailure struct {
	Error    string         `json:"error"`
	Details  string         `json:"details,omitempty"`
	Attempts []ModelAttempt `json:"attempts,omitempty"`
}

// ModelAttempt records the outcome of one model invocation during fallback.
type ModelAttempt struct {
	Model string `json:"model"`
	Error string `json:"error"`
}
