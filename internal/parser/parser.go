// Package parser turns raw model output into typed tool results, validating
// against each tool's output schema and coercing near-miss values.
package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/careerkit/career-tools/internal/llm"
	"github.com/careerkit/career-tools/internal/schemas"
	"github.com/careerkit/career-tools/internal/tools"
	"github.com/careerkit/career-tools/internal/types"
)

// ParseError indicates the model returned output that cannot be coerced into
// the tool's result schema.
type ParseError struct {
	Tool tools.Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unusable model output for %s: %v", e.Tool, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseCoverLetter extracts a cover letter result from raw model output.
// JSON output is validated against the schema; plain prose is accepted as the
// letter body itself, since models often answer a prose task in prose.
// The word count is always computed server-side.
func ParseCoverLetter(raw string) (*types.CoverLetterResult, error) {
	cleaned := llm.CleanJSONBlock(raw)

	letter := cleaned
	if strings.HasPrefix(cleaned, "{") {
		if err := schemas.ValidateOutput(tools.CoverLetter, cleaned); err != nil {
			return nil, &ParseError{Tool: tools.CoverLetter, Err: err}
		}
		var out struct {
			CoverLetter string `json:"coverLetter"`
		}
		if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
			return nil, &ParseError{Tool: tools.CoverLetter, Err: err}
		}
		letter = out.CoverLetter
	}

	letter = strings.TrimSpace(letter)
	if letter == "" {
		return nil, &ParseError{Tool: tools.CoverLetter, Err: fmt.Errorf("empty cover letter")}
	}

	return &types.CoverLetterResult{
		CoverLetter: letter,
		WordCount:   len(strings.Fields(letter)),
	}, nil
}

// ParseSalary extracts a salary result from raw model output. Percentiles
// are reordered if the model returned them out of order; negative figures are
// clamped to zero; the optional factors list defaults to empty.
func ParseSalary(raw string) (*types.SalaryResult, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateOutput(tools.Salary, cleaned); err != nil {
		return nil, &ParseError{Tool: tools.Salary, Err: err}
	}

	var out types.SalaryResult
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Tool: tools.Salary, Err: err}
	}

	figures := []float64{out.P25, out.Median, out.P75}
	for i, f := range figures {
		if f < 0 {
			figures[i] = 0
		}
	}
	sort.Float64s(figures)
	out.P25, out.Median, out.P75 = figures[0], figures[1], figures[2]

	out.Currency = strings.ToUpper(strings.TrimSpace(out.Currency))
	if out.Factors == nil {
		out.Factors = []string{}
	}

	return &out, nil
}

// rawLeadership mirrors the model's leadership output before clamping.
type rawLeadership struct {
	Score      float64 `json:"score"`
	Dimensions []struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	} `json:"dimensions"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growthAreas"`
	Summary     string   `json:"summary"`
}

// ParseLeadership extracts a leadership result from raw model output.
// Scores outside 0-100 are clamped, not rejected; decorative arrays default
// to empty so the UI can still render the core result.
func ParseLeadership(raw string) (*types.LeadershipResult, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateOutput(tools.Leadership, cleaned); err != nil {
		return nil, &ParseError{Tool: tools.Leadership, Err: err}
	}

	var out rawLeadership
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Tool: tools.Leadership, Err: err}
	}

	result := &types.LeadershipResult{
		Score:       clampScore(out.Score),
		Dimensions:  make([]types.DimensionScore, 0, len(out.Dimensions)),
		Strengths:   out.Strengths,
		GrowthAreas: out.GrowthAreas,
		Summary:     out.Summary,
	}

	for _, d := range out.Dimensions {
		result.Dimensions = append(result.Dimensions, types.DimensionScore{
			Name:  d.Name,
			Score: clampScore(d.Score),
		})
	}

	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.GrowthAreas == nil {
		result.GrowthAreas = []string{}
	}

	return result, nil
}

// clampScore clamps a model-reported score to 0-100 and rounds to an integer.
// Model output is untrusted but usually near-correct, so out-of-range values
// are clamped rather than rejected.
func clampScore(f float64) int {
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(math.Round(f))
}
