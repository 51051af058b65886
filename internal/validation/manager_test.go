package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(testCatalog, testWorkingHours)
}

func TestValidatePatientData(t *testing.T) {
	m := newTestManager()

	results := m.ValidatePatientData("john doe", "+355671234567", "john@example.com")
	require.Len(t, results, 3)
	for field, result := range results {
		assert.True(t, result.IsValid, "field %s: %s", field, result.Error)
	}
	assert.Equal(t, "John Doe", results["name"].Value)
	assert.Equal(t, "+355671234567", results["phone"].Value)
	assert.Equal(t, "john@example.com", results["email"].Value)

	// Email stays optional.
	results = m.ValidatePatientData("john doe", "+355671234567", "")
	assert.True(t, results["email"].IsValid)
	assert.Empty(t, results["email"].Value)
}

func TestValidateAppointmentData(t *testing.T) {
	m := newTestManager()

	monday := nextWeekday(time.Monday).Format("2006-01-02") + "T10:00:00"
	results := m.ValidateAppointmentData("jane doe", "0681234567", "teeth whitening", monday, "  some   notes ")
	require.Len(t, results, 5)
	for field, result := range results {
		assert.True(t, result.IsValid, "field %s: %s", field, result.Error)
	}
	assert.Equal(t, "Jane Doe", results["patient_name"].Value)
	assert.Equal(t, "+355681234567", results["phone"].Value)
	assert.Equal(t, "teeth whitening", results["service"].Value)
	assert.Equal(t, "some notes", results["notes"].Value)
}

func TestValidateAppointmentDataAllInvalid(t *testing.T) {
	m := newTestManager()

	results := m.ValidateAppointmentData("", "invalid", "", "invalid-date", "")

	assert.False(t, results["patient_name"].IsValid)
	assert.Equal(t, "Name is required", results["patient_name"].Error)

	assert.False(t, results["phone"].IsValid)
	assert.Contains(t, results["phone"].Error, "Invalid Albanian phone number format")

	assert.False(t, results["service"].IsValid)
	assert.False(t, results["appointment_date"].IsValid)

	// Notes are sanitized, never invalid.
	assert.True(t, results["notes"].IsValid)
}

func TestValidateFollowUpData(t *testing.T) {
	m := newTestManager()

	results := m.ValidateFollowUpData("john doe", "067 123 4567", "10:30 am", "wants pricing details")
	require.Len(t, results, 4)
	for field, result := range results {
		assert.True(t, result.IsValid, "field %s: %s", field, result.Error)
	}
	assert.Equal(t, "10:30 AM", results["preferred_time"].Value)
	assert.Equal(t, "wants pricing details", results["reason"].Value)

	results = m.ValidateFollowUpData("john doe", "067 123 4567", "whenever", "reason")
	assert.False(t, results["preferred_time"].IsValid)
	assert.Equal(t, "Invalid time format", results["preferred_time"].Error)
}
