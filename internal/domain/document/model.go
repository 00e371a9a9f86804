package document

import (
	"fmt"
	"time"
)

// Status classifies a tracked document relative to its expiry date.
type Status string

// Classification labels. Exactly one applies to any (expiry, window, today) triple.
const (
	StatusMissing      Status = "missing"
	StatusExpired      Status = "expired"
	StatusExpiringSoon Status = "expiring_soon"
	StatusCurrent      Status = "current"
)

// Tracked document types.
const (
	TypeIDCard     = "id_card"
	TypeHealthCard = "health_card"
)

// DefaultAlertWindowDays is used when no alert window is configured.
const DefaultAlertWindowDays = 30

// DateLayout is the storage format for expiry dates.
const DateLayout = "2006-01-02"

// ValidationError reports an expiry date string that could not be parsed.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid date for %s: %q (want YYYY-MM-DD)", e.Field, e.Value)
}

// ParseDate parses a stored expiry date string.
// An empty string means "no date on file" and returns (nil, nil).
// Anything else must be a valid YYYY-MM-DD date or a ValidationError is returned.
// PRE: none
// POST: Returns nil for absent dates, a midnight UTC time for valid ones
func ParseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, &ValidationError{Field: field, Value: value}
	}
	return &t, nil
}

// Classify maps an optional expiry date and an alert window to a Status.
// The expired check runs before the window check, so an expired document is
// never reported as expiring soon.
// PRE: today is any time on the day being evaluated
// POST: Returns exactly one Status; inputs are not mutated
// INVARIANT: expiry == today is not expired; expiry exactly windowDays out is expiring_soon
func Classify(expiry *time.Time, windowDays int, today time.Time) Status {
	if expiry == nil {
		return StatusMissing
	}
	if windowDays <= 0 {
		windowDays = DefaultAlertWindowDays
	}

	// Strip time-of-day so the classification cannot flap within a day.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	exp := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, today.Location())

	if exp.Before(day) {
		return StatusExpired
	}
	// Calendar-day subtraction handles month and year rollovers.
	threshold := exp.AddDate(0, 0, -windowDays)
	if !day.Before(threshold) {
		return StatusExpiringSoon
	}
	return StatusCurrent
}
