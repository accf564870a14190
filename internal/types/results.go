package types

// CoverLetterResult is the cover letter generator's response body.
// WordCount is computed server-side from the returned letter.
type CoverLetterResult struct {
	CoverLetter string `json:"coverLetter"`
	WordCount   int    `json:"wordCount"`
}

// SalaryResult is the salary analyzer's response body. Figures are annual,
// in the stated currency. Percentiles satisfy P25 <= Median <= P75.
type SalaryResult struct {
	Currency string   `json:"currency"`
	Median   float64  `json:"median"`
	P25      float64  `json:"p25"`
	P75      float64  `json:"p75"`
	Factors  []string `json:"factors"`
	Summary  string   `json:"summary"`
}

// DimensionScore is one scored leadership dimension.
type DimensionScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"` // 0-100
}

// LeadershipResult is the leadership assessment's response body.
// Score and all dimension scores are clamped to 0-100.
type LeadershipResult struct {
	Score       int              `json:"score"`
	Dimensions  []DimensionScore `json:"dimensions"`
	Strengths   []string         `json:"strengths"`
	GrowthAreas []string         `json:"growthAreas"`
	Summary     string           `json:"summary"`
}
