package llm

import "testing"

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON unchanged",
			input:    `{"coverLetter": "text"}`,
			expected: `{"coverLetter": "text"}`,
		},
		{
			name:     "json code block",
			input:    "```json\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n {\"a\": 1} \n ",
			expected: `{"a": 1}`,
		},
		{
			name:     "language identifier line skipped",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "free text unchanged",
			input:    "Dear Hiring Manager,",
			expected: "Dear Hiring Manager,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSONBlock(tt.input); got != tt.expected {
				t.Errorf("CleanJSONBlock(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
