package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerkit/career-tools/internal/types"
)

func validCoverLetterRequest() *types.CoverLetterRequest {
	return &types.CoverLetterRequest{
		Resume:         "Senior engineer with ten years of backend experience.",
		JobDescription: "We are hiring a staff engineer to lead our platform team.",
	}
}

func TestCoverLetter_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.CoverLetter(validCoverLetterRequest()))
}

func TestCoverLetter_MissingResume(t *testing.T) {
	v := New()
	req := validCoverLetterRequest()
	req.Resume = "   " // whitespace only: trimmed before the required check

	err := v.CoverLetter(req)
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "resume", fe.Field)
	assert.Equal(t, "is required", fe.Message)
}

func TestCoverLetter_ResumeTooLong(t *testing.T) {
	v := New()
	req := validCoverLetterRequest()
	req.Resume = strings.Repeat("a", 20000)

	err := v.CoverLetter(req)
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "resume", fe.Field)
	assert.Contains(t, fe.Message, "15000 characters")
}

func TestCoverLetter_ResumeTooManyWords(t *testing.T) {
	v := New()
	req := validCoverLetterRequest()
	// 3000 words but under the 15000 character cap.
	req.Resume = strings.TrimSpace(strings.Repeat("word ", 3000))

	err := v.CoverLetter(req)
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "resume", fe.Field)
	assert.Contains(t, fe.Message, "2500 words")
}

func TestCoverLetter_JobDescriptionTooLong(t *testing.T) {
	v := New()
	req := validCoverLetterRequest()
	req.JobDescription = strings.Repeat("b", 5000)

	err := v.CoverLetter(req)
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "jobDescription", fe.Field)
	assert.Contains(t, fe.Message, "4000 characters")
}

func TestCoverLetter_InvalidTone(t *testing.T) {
	v := New()
	req := validCoverLetterRequest()
	req.Tone = "sarcastic"

	err := v.CoverLetter(req)
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "tone", fe.Field)
	assert.Contains(t, fe.Message, "professional")
}

func TestCoverLetter_Deterministic(t *testing.T) {
	v := New()

	// The same invalid payload always reports the same field, regardless of
	// what else is wrong with the request.
	for i := 0; i < 5; i++ {
		req := &types.CoverLetterRequest{
			Resume:         strings.Repeat("a", 20000),
			JobDescription: "", // also invalid
		}
		err := v.CoverLetter(req)
		require.Error(t, err)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "resume", fe.Field)
	}
}

func TestSalary_Valid(t *testing.T) {
	v := New()
	err := v.Salary(&types.SalaryRequest{
		JobTitle:        "Data Engineer",
		Location:        "Denver, CO",
		YearsExperience: 6,
	})
	assert.NoError(t, err)
}

func TestSalary_MissingLocation(t *testing.T) {
	v := New()
	err := v.Salary(&types.SalaryRequest{JobTitle: "Data Engineer"})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "location", fe.Field)
	assert.Equal(t, "is required", fe.Message)
}

func TestSalary_ExperienceOutOfRange(t *testing.T) {
	v := New()
	err := v.Salary(&types.SalaryRequest{
		JobTitle:        "Data Engineer",
		Location:        "Denver, CO",
		YearsExperience: 80,
	})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "yearsExperience", fe.Field)
	assert.Contains(t, fe.Message, "50")
}

func TestLeadership_Valid(t *testing.T) {
	v := New()
	err := v.Leadership(&types.LeadershipRequest{
		Answers: []int{3, 4, 5, 2, 4, 3},
		Role:    "Engineering Manager",
	})
	assert.NoError(t, err)
}

func TestLeadership_TooFewAnswers(t *testing.T) {
	v := New()
	err := v.Leadership(&types.LeadershipRequest{Answers: []int{3, 4}})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "answers", fe.Field)
	assert.Contains(t, fe.Message, "at least 5 entries")
}

func TestLeadership_AnswerOutOfScale(t *testing.T) {
	v := New()
	err := v.Leadership(&types.LeadershipRequest{Answers: []int{3, 4, 5, 2, 9}})
	require.Error(t, err)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "answers[4]", fe.Field)
	assert.Contains(t, fe.Message, "at most 5")
}
