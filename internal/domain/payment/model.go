package payment

import (
	"errors"
	"strings"

	"clubdesk/internal/domain/document"
)

// Payment category constants
const (
	CategoryDues        = "dues"
	CategoryGear        = "gear"
	CategoryFundraising = "fundraising"
)

// Payment status constants
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// ValidCategories contains all valid category values.
var ValidCategories = []string{CategoryDues, CategoryGear, CategoryFundraising}

// Domain errors
var (
	ErrAlreadyPaid = errors.New("payment is already settled")
)

// Payment is one charge against a player. Amount is in cents; Notes is
// free-form markdown shown on the payments page.
type Payment struct {
	ID       string
	PlayerID string
	Amount   int
	Category string
	Status   string
	DueDate  string // YYYY-MM-DD
	PaidDate string // YYYY-MM-DD, empty while pending
	Notes    string
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Payment) Validate() error {
	if p.PlayerID == "" {
		return errors.New("payment must reference a player")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !isValidCategory(p.Category) {
		return errors.New("category must be 'dues', 'gear', or 'fundraising'")
	}
	if p.Status != StatusPaid && p.Status != StatusPending {
		return errors.New("status must be 'paid' or 'pending'")
	}
	if strings.TrimSpace(p.DueDate) == "" {
		return errors.New("due date is required")
	}
	for _, d := range []struct{ field, value string }{
		{"due_date", p.DueDate},
		{"paid_date", p.PaidDate},
	} {
		if _, err := document.ParseDate(d.field, d.value); err != nil {
			return err
		}
	}
	return nil
}

// IsPending returns true while the charge is outstanding.
// INVARIANT: Payment fields are not mutated
func (p *Payment) IsPending() bool {
	return p.Status == StatusPending
}

// MarkPaid settles the payment on the given date.
// PRE: Payment is pending
// POST: Status is paid and PaidDate is set
func (p *Payment) MarkPaid(date string) error {
	if p.Status == StatusPaid {
		return ErrAlreadyPaid
	}
	if _, err := document.ParseDate("paid_date", date); err != nil {
		return err
	}
	p.Status = StatusPaid
	p.PaidDate = date
	return nil
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}
