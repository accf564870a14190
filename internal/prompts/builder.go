package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/careerkit/career-tools/internal/tools"
	"github.com/careerkit/career-tools/internal/types"
)

const generationFile = "generation.json"

// neutralizer rewrites character sequences that could be mistaken for
// template or prompt structure. User text is wrapped in triple-quoted blocks
// inside the templates, so fence and delimiter sequences are the ones that
// matter. This is defensive templating, not a sandbox.
var neutralizer = strings.NewReplacer(
	"{{", "{ {",
	"}}", "} }",
	"```", "'''",
	`"""`, "'''",
)

// Neutralize sanitizes user-supplied text before template substitution.
func Neutralize(s string) string {
	return neutralizer.Replace(s)
}

// BuildCoverLetter renders the cover letter prompt. Output is byte-identical
// for identical input.
func BuildCoverLetter(req *types.CoverLetterRequest) (string, error) {
	tmpl, err := Get(generationFile, string(tools.CoverLetter))
	if err != nil {
		return "", err
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	return Format(tmpl, map[string]string{
		"Tone":           tone,
		"Resume":         Neutralize(req.Resume),
		"JobDescription": Neutralize(req.JobDescription),
	}), nil
}

// BuildSalary renders the salary analysis prompt.
func BuildSalary(req *types.SalaryRequest) (string, error) {
	tmpl, err := Get(generationFile, string(tools.Salary))
	if err != nil {
		return "", err
	}

	industry := req.Industry
	if industry == "" {
		industry = "unspecified"
	}

	return Format(tmpl, map[string]string{
		"JobTitle":        Neutralize(req.JobTitle),
		"Location":        Neutralize(req.Location),
		"YearsExperience": strconv.Itoa(req.YearsExperience),
		"Industry":        Neutralize(industry),
	}), nil
}

// BuildLeadership renders the leadership assessment prompt.
func BuildLeadership(req *types.LeadershipRequest) (string, error) {
	tmpl, err := Get(generationFile, string(tools.Leadership))
	if err != nil {
		return "", err
	}

	answers := make([]string, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = strconv.Itoa(a)
	}

	role := req.Role
	if role == "" {
		role = "unspecified"
	}

	return Format(tmpl, map[string]string{
		"Role":    Neutralize(role),
		"Answers": strings.Join(answers, ", "),
	}), nil
}

// Build renders the prompt for any tool kind from its validated request.
// The request must be the matching type for the tool.
func Build(tool tools.Kind, req any) (string, error) {
	switch tool {
	case tools.CoverLetter:
		r, ok := req.(*types.CoverLetterRequest)
		if !ok {
			return "", fmt.Errorf("prompt build: expected *CoverLetterRequest, got %T", req)
		}
		return BuildCoverLetter(r)
	case tools.Salary:
		r, ok := req.(*types.SalaryRequest)
		if !ok {
			return "", fmt.Errorf("prompt build: expected *SalaryRequest, got %T", req)
		}
		return BuildSalary(r)
	case tools.Leadership:
		r, ok := req.(*types.LeadershipRequest)
		if !ok {
			return "", fmt.Errorf("prompt build: expected *LeadershipRequest, got %T", req)
		}
		return BuildLeadership(r)
	default:
		return "", fmt.Errorf("prompt build: unknown tool %q", tool)
	}
}
