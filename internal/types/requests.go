// Package types provides the request and response contracts for the career tools API.
package types

// Size bounds enforced server-side. The UI pre-validates the same limits
// client-side as a UX nicety, but these are authoritative.
const (
	MaxResumeChars         = 15000
	MaxResumeWords         = 2500
	MaxJobDescriptionChars = 4000
	MaxShortFieldChars     = 200

	MinAssessmentAnswers = 5
	MaxAssessmentAnswers = 25
)

// CoverLetterRequest is the input to the cover letter generator.
type CoverLetterRequest struct {
	Resume         string `json:"resume" validate:"required,max=15000"`
	JobDescription string `json:"jobDescription" validate:"required,max=4000"`
	Tone           string `json:"tone,omitempty" validate:"omitempty,oneof=professional conversational enthusiastic"`
}

// SalaryRequest is the input to the salary analyzer.
type SalaryRequest struct {
	JobTitle        string `json:"jobTitle" validate:"required,max=200"`
	Location        string `json:"location" validate:"required,max=200"`
	YearsExperience int    `json:"yearsExperience" validate:"min=0,max=50"`
	Industry        string `json:"industry,omitempty" validate:"omitempty,max=200"`
}

// LeadershipRequest is the input to the leadership readiness assessment.
// Answers are Likert-scale responses, 1 (strongly disagree) to 5 (strongly agree).
type LeadershipRequest struct {
	Answers []int  `json:"answers" validate:"required,min=5,max=25,dive,min=1,max=5"`
	Role    string `json:"role,omitempty" validate:"omitempty,max=200"`
}
