package validation

import (
	"regexp"
	"strings"
	"time"
)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var timeSlotPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM|am|pm)?$`),
	regexp.MustCompile(`^(\d{1,2})\s*(AM|PM|am|pm)$`),
	regexp.MustCompile(`^(\d{1,2}):(\d{2})$`),
}

// DateValidator validates appointment dates against the clinic's working
// hours calendar.
type DateValidator struct {
	workingHours map[string]string
}

func NewDateValidator(workingHours map[string]string) *DateValidator {
	return &DateValidator{workingHours: workingHours}
}

// ValidateAppointmentDate parses an ISO-8601 date or datetime and checks it
// falls on a bookable day: not in the past, at most one year ahead, on a
// weekday the clinic has hours for, and never a Sunday.
func (v *DateValidator) ValidateAppointmentDate(dateStr string) Result {
	if dateStr == "" {
		return invalid("Date is required")
	}

	appointmentDate, err := parseISODate(strings.TrimSpace(dateStr))
	if err != nil {
		return invalid("Invalid date format: " + err.Error())
	}

	// Compare calendar days at face value, regardless of offset.
	today := dateOnly(time.Now())
	appointmentDay := dateOnly(appointmentDate)

	if appointmentDay.Before(today) {
		return invalid("Appointment date cannot be in the past")
	}
	if appointmentDay.After(today.AddDate(1, 0, 0)) {
		return invalid("Appointment date too far in future")
	}

	weekday := strings.ToLower(appointmentDate.Weekday().String())
	if _, ok := v.workingHours[weekday]; !ok {
		return invalid("Invalid weekday")
	}
	if weekday == "sunday" {
		return invalid("Clinic is closed on Sundays")
	}

	return valid(appointmentDate.Format(time.RFC3339))
}

// ValidateTimeSlot accepts the common spoken time formats (H:MM, H:MM AM/PM,
// H AM/PM) and normalizes to upper case.
func ValidateTimeSlot(timeStr string) Result {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return invalid("Time slot is required")
	}

	for _, pattern := range timeSlotPatterns {
		if pattern.MatchString(timeStr) {
			return valid(strings.ToUpper(timeStr))
		}
	}
	return invalid("Invalid time format")
}

func parseISODate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
