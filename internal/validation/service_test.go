package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCatalog = []string{
	"regular check-ups and cleanings",
	"cosmetic dentistry and whitening",
	"emergency dental care",
	"children's dentistry",
	"dental implants and prosthetics",
	"root canal treatment",
	"dental crowns",
	"teeth whitening",
	"dental fillings",
	"orthodontics",
}

func TestServiceTypeCatalogMatch(t *testing.T) {
	v := NewServiceTypeValidator(testCatalog)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact", "root canal treatment", "root canal treatment"},
		{"substring of entry", "root canal", "root canal treatment"},
		{"entry inside longer request", "I need emergency dental care today", "emergency dental care"},
		{"case insensitive", "ORTHODONTICS", "orthodontics"},
		{"cleaning maps to checkups", "cleanings", "regular check-ups and cleanings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.input)
			assert.True(t, result.IsValid, "error: %s", result.Error)
			assert.Equal(t, tt.want, result.Value)
		})
	}
}

func TestServiceTypeFreeText(t *testing.T) {
	v := NewServiceTypeValidator(testCatalog)

	result := v.Validate("wisdom tooth extraction")
	assert.True(t, result.IsValid)
	assert.Equal(t, "Wisdom Tooth Extraction", result.Value)
}

func TestServiceTypeRejections(t *testing.T) {
	v := NewServiceTypeValidator(testCatalog)

	result := v.Validate("")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Service type is required", result.Error)

	result = v.Validate("xy")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Service description must be 3-100 characters", result.Error)

	result = v.Validate(strings.Repeat("z", 101))
	assert.False(t, result.IsValid)
	assert.Equal(t, "Service description must be 3-100 characters", result.Error)
}
