// Package tools defines the closed set of interactive tools served by the API.
package tools

// Kind identifies one of the interactive career tools.
type Kind string

const (
	// CoverLetter generates a tailored cover letter from a resume and job description.
	CoverLetter Kind = "cover_letter"
	// Salary analyzes expected compensation for a role and location.
	Salary Kind = "salary"
	// Leadership scores leadership readiness from assessment answers.
	Leadership Kind = "leadership"
)

// All returns every tool kind in a stable order.
func All() []Kind {
	return []Kind{CoverLetter, Salary, Leadership}
}

// Valid reports whether k is a known tool kind.
func (k Kind) Valid() bool {
	switch k {
	case CoverLetter, Salary, Leadership:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the tool.
func (k Kind) DisplayName() string {
	switch k {
	case CoverLetter:
		return "Cover Letter Generator"
	case Salary:
		return "Salary Analyzer"
	case Leadership:
		return "Leadership Readiness Assessment"
	default:
		return string(k)
	}
}
