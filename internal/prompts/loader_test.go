package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	fragment, err := Get("autofix.json", "user_return")
	require.NoError(t, err)
	assert.NotEmpty(t, fragment)
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("autofix.json", "does_not_exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("autofix.json", "does_not_exist")
	})
	assert.NotPanics(t, func() {
		MustGet("autofix.json", "safe_edit_policy")
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "Single placeholder",
			template: "Respond in {{.Language}}.",
			data:     map[string]string{"Language": "English"},
			expected: "Respond in English.",
		},
		{
			name:     "Repeated placeholder",
			template: "{{.Name}} and {{.Name}}",
			data:     map[string]string{"Name": "twice"},
			expected: "twice and twice",
		},
		{
			name:     "Unknown placeholder untouched",
			template: "Hello {{.Missing}}",
			data:     map[string]string{"Other": "x"},
			expected: "Hello {{.Missing}}",
		},
		{
			name:     "No placeholders",
			template: "plain text",
			data:     map[string]string{"Key": "value"},
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestGetCachesFile(t *testing.T) {
	first, err := Get("autofix.json", "system_normal")
	require.NoError(t, err)
	second, err := Get("autofix.json", "system_normal")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
