package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt embeds the resume text into the fixed analysis
// prompt. The model is instructed to answer with strict JSON only.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume and return STRICT JSON only.

Resume:
%s

JSON format:
{
  "overall_assessment": "",
  "strengths": [],
  "improvements": [],
  "missing_skills": [],
  "recommended_courses": [
    {
      "name": "",
      "description": "",
      "reason": ""
    }
  ],
  "career_suggestions": []
}
`, resumeText)
}
