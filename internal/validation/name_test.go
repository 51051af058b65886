package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "john doe", "John Doe"},
		{"extra whitespace", "  john   doe  ", "John Doe"},
		{"already canonical", "John Doe", "John Doe"},
		{"hyphenated", "anna-maria smith", "Anna-maria Smith"},
		{"apostrophe", "o'brien", "O'brien"},
		{"with period", "dr. smith", "Dr. Smith"},
		{"uppercase input", "JOHN DOE", "John Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateName(tt.input)
			assert.True(t, result.IsValid, "error: %s", result.Error)
			assert.Equal(t, tt.want, result.Value)
		})
	}
}

func TestValidateNameRejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "Name is required"},
		{"whitespace only", "   ", "Name is required"},
		{"single char", "j", "Name must be at least 2 characters"},
		{"too long", strings.Repeat("a", 101), "Name must be less than 100 characters"},
		{"script tag", "<script>alert(1)</script>", "Invalid characters in name"},
		{"javascript uri", "javascript:alert(1)", "Invalid characters in name"},
		{"event handler", "onload=evil", "Invalid characters in name"},
		{"data uri", "data:text/html;base64,x", "Invalid characters in name"},
		{"digits", "john doe 3rd", "Name contains invalid characters"},
		{"cyrillic", "Иван Петров", "Name contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateName(tt.input)
			assert.False(t, result.IsValid)
			assert.Equal(t, tt.wantErr, result.Error)
		})
	}
}

func TestValidateNameIdempotent(t *testing.T) {
	first := ValidateName("  mary   jane o'connor ")
	assert.True(t, first.IsValid)

	second := ValidateName(first.Value)
	assert.True(t, second.IsValid)
	assert.Equal(t, first.Value, second.Value)
}
