// Package validation checks tool request payloads against their declared
// constraints, reporting the first violation with the offending field name.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/careerkit/career-tools/internal/types"
)

// Validator validates tool request payloads. It is a pure checker: the only
// mutation it performs is trimming surrounding whitespace from string fields
// before the non-empty checks run.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New()

	// Report JSON field names, not Go field names, so error messages match
	// what the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// CoverLetter validates a cover letter request.
func (v *Validator) CoverLetter(req *types.CoverLetterRequest) error {
	req.Resume = strings.TrimSpace(req.Resume)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	req.Tone = strings.TrimSpace(req.Tone)

	if err := v.check(req); err != nil {
		return err
	}

	// validator/v10 has no word-count rule; the resume bound is checked by hand.
	if words := len(strings.Fields(req.Resume)); words > types.MaxResumeWords {
		return &FieldError{
			Field:   "resume",
			Message: fmt.Sprintf("must be at most %d words, got %d", types.MaxResumeWords, words),
		}
	}

	return nil
}

// Salary validates a salary analysis request.
func (v *Validator) Salary(req *types.SalaryRequest) error {
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.Location = strings.TrimSpace(req.Location)
	req.Industry = strings.TrimSpace(req.Industry)

	return v.check(req)
}

// Leadership validates a leadership assessment request.
func (v *Validator) Leadership(req *types.LeadershipRequest) error {
	req.Role = strings.TrimSpace(req.Role)

	return v.check(req)
}

// check runs struct validation and translates the first violation into a
// FieldError. Fields are checked in declaration order, so the first reported
// error is deterministic for a given payload.
func (v *Validator) check(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &FieldError{Field: "(request)", Message: err.Error()}
	}

	fe := verrs[0]
	return &FieldError{
		Field:   fieldPath(fe),
		Message: constraintMessage(fe),
	}
}

// fieldPath strips the struct name prefix from the error namespace, keeping
// nested paths like "answers[3]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// constraintMessage renders the violated constraint in terms a client can act on.
func constraintMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		default:
			return fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "min":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must have at least %s entries", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed constraint %q", fe.Tag())
	}
}
