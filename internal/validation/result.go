// Package validation checks and normalizes the raw strings collected during a
// call: Albanian phone numbers, patient names, emails, service types and
// appointment dates. Validators never return errors as Go errors; every check
// produces a Result so the caller can surface a per-field message to the
// patient without aborting the conversation.
package validation

// Result is the outcome of a single validation. Either IsValid is true and
// Value holds the canonical form, or IsValid is false and Error holds a
// stable, user-facing message. An empty Value on a valid Result means the
// field was absent and optional.
type Result struct {
	IsValid bool   `json:"is_valid"`
	Value   string `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

func valid(value string) Result {
	return Result{IsValid: true, Value: value}
}

func invalid(message string) Result {
	return Result{Error: message}
}
