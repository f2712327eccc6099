package ghsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifyBranch(t *testing.T) {
	assert.Equal(t, "refs/heads/master", qualifyBranch("master"))
	assert.Equal(t, "refs/heads/release/v1", qualifyBranch("release/v1"))
	assert.Equal(t, "refs/heads/master", qualifyBranch("refs/heads/master"))
	assert.Equal(t, "refs/tags/v1", qualifyBranch("refs/tags/v1"))
}

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		expectedTitle string
		expectedBody  string
	}{
		{name: "single line", message: "Publish assets", expectedTitle: "Publish assets"},
		{
			name:          "title and body",
			message:       "Publish assets\n\nNightly build output.",
			expectedTitle: "Publish assets",
			expectedBody:  "Nightly build output.",
		},
		{
			name:          "multi-line body",
			message:       "Publish\nline one\nline two",
			expectedTitle: "Publish",
			expectedBody:  "line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := splitMessage(tt.message)
			assert.Equal(t, tt.expectedTitle, title)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
