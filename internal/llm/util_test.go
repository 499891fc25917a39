package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No fences", "plain copy text", "plain copy text"},
		{"Plain fences", "```\nsome copy\n```", "some copy"},
		{"Text fences", "```text\nsome copy\n```", "some copy"},
		{"Surrounding whitespace", "  trimmed copy \n", "trimmed copy"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripFences(tt.input))
		})
	}
}
