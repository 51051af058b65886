package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testWorkingHours = map[string]string{
	"monday":    "9 AM - 6 PM",
	"tuesday":   "9 AM - 6 PM",
	"wednesday": "9 AM - 6 PM",
	"thursday":  "9 AM - 6 PM",
	"friday":    "9 AM - 6 PM",
	"saturday":  "9 AM - 2 PM",
	"sunday":    "Closed",
}

// nextWeekday returns the next occurrence of the given weekday, at least one
// day from now.
func nextWeekday(day time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func TestValidateAppointmentDate(t *testing.T) {
	v := NewDateValidator(testWorkingHours)

	monday := nextWeekday(time.Monday).Format("2006-01-02") + "T10:00:00"
	result := v.ValidateAppointmentDate(monday)
	assert.True(t, result.IsValid, "error: %s", result.Error)
	assert.NotEmpty(t, result.Value)

	// Canonical value stays valid on re-validation.
	again := v.ValidateAppointmentDate(result.Value)
	assert.True(t, again.IsValid, "error: %s", again.Error)

	// Trailing Z accepted as UTC.
	zulu := nextWeekday(time.Wednesday).Format("2006-01-02") + "T10:00:00Z"
	result = v.ValidateAppointmentDate(zulu)
	assert.True(t, result.IsValid, "error: %s", result.Error)
}

func TestValidateAppointmentDateRejections(t *testing.T) {
	v := NewDateValidator(testWorkingHours)

	result := v.ValidateAppointmentDate("")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Date is required", result.Error)

	result = v.ValidateAppointmentDate("not-a-date")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Error, "Invalid date format")

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	result = v.ValidateAppointmentDate(yesterday)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Error, "past")

	farFuture := time.Now().AddDate(0, 0, 400).Format("2006-01-02")
	result = v.ValidateAppointmentDate(farFuture)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Error, "too far")

	sunday := nextWeekday(time.Sunday).Format("2006-01-02") + "T10:00:00"
	result = v.ValidateAppointmentDate(sunday)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Clinic is closed on Sundays", result.Error)
}

func TestValidateAppointmentDateUnknownWeekday(t *testing.T) {
	// A calendar missing Saturday means Saturdays are not bookable at all.
	v := NewDateValidator(map[string]string{
		"monday": "9 AM - 6 PM",
	})

	saturday := nextWeekday(time.Saturday).Format("2006-01-02")
	result := v.ValidateAppointmentDate(saturday)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Invalid weekday", result.Error)
}

func TestValidateTimeSlot(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"9:00", "9:00"},
		{"10:30 AM", "10:30 AM"},
		{"2:00 pm", "2:00 PM"},
		{"9 AM", "9 AM"},
		{" 4:30 PM ", "4:30 PM"},
	}

	for _, tt := range tests {
		result := ValidateTimeSlot(tt.input)
		assert.True(t, result.IsValid, "input %q: %s", tt.input, result.Error)
		assert.Equal(t, tt.want, result.Value)
	}

	result := ValidateTimeSlot("")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Time slot is required", result.Error)

	result = ValidateTimeSlot("half past nine")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Invalid time format", result.Error)
}
