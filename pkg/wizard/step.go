package wizard

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// StepResult is the outcome of validating one step. Errors are keyed by field
// name with human-readable messages; Warnings never block navigation.
type StepResult struct {
	Valid    bool              `json:"valid"`
	Errors   map[string]string `json:"errors"`
	Warnings []string          `json:"warnings,omitempty"`
}

func okResult() StepResult {
	return StepResult{Valid: true, Errors: map[string]string{}}
}

func (r *StepResult) fail(field, message string) {
	r.Valid = false
	r.Errors[field] = message
}

// StepValidator validates the slice of case data one step owns. Validators
// never mutate the snapshot; all merging happens through the controller.
type StepValidator interface {
	Validate(data *CaseData, role Role) StepResult
}

var fieldValidate = validator.New()

func isValidEmail(s string) bool {
	return fieldValidate.Var(s, "email") == nil
}

const isoDate = "2006-01-02"

// dateOnOrAfterToday reports whether s parses as an ISO date not before the
// current local day. Malformed input is reported separately by the caller.
func dateOnOrAfterToday(s string) bool {
	d, err := time.ParseInLocation(isoDate, s, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !d.Before(today)
}

func isISODate(s string) bool {
	_, err := time.Parse(isoDate, s)
	return err == nil
}

// isClockTime accepts HH:MM in 24h form, e.g. "09:30" or "9:30".
func isClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	if err != nil {
		_, err = time.Parse("3:04", s)
	}
	return err == nil
}
