package player

import (
	"errors"
	"strings"
	"time"

	"clubdesk/internal/domain/document"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxPhoneLength = 32
)

// Shirt numbers are bounded; zero means "not assigned".
const (
	MinShirtNumber = 1
	MaxShirtNumber = 99
)

// Player is one roster entry. Optional text fields are empty when not on
// file; expiry dates are stored as YYYY-MM-DD strings and validated by
// document.ParseDate before any classification.
type Player struct {
	ID          string
	FullName    string
	PhotoURL    string
	ShirtNumber int
	BirthDate   string
	Position    string

	// Gear sizes
	ShirtSize      string
	ShortSize      string
	SocksSize      string
	LongJerseySize string
	LongShortsSize string
	JacketSize     string
	ShoeSize       string

	// Guardian contacts
	MotherName    string
	MotherPhone   string
	FatherName    string
	FatherPhone   string
	ReferentName  string
	ReferentPhone string
	Address       string

	// Documents
	IDCardNum        string
	IDCardExpiry     string
	IDCardURL        string
	HealthCardExpiry string
	HealthCardURL    string
	PermitInfo       string
	PermitExpiry     string
	HealthInsurance  string
	Allergies        string

	CreatedAt time.Time
}

// Validate checks if the Player has valid data.
// PRE: Player struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Player) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return errors.New("player name cannot be empty")
	}
	if len(p.FullName) > MaxNameLength {
		return errors.New("player name cannot exceed 100 characters")
	}
	if p.ShirtNumber != 0 && (p.ShirtNumber < MinShirtNumber || p.ShirtNumber > MaxShirtNumber) {
		return errors.New("shirt number must be between 1 and 99")
	}
	for _, phone := range []string{p.MotherPhone, p.FatherPhone, p.ReferentPhone} {
		if len(phone) > MaxPhoneLength {
			return errors.New("guardian phone cannot exceed 32 characters")
		}
	}
	for _, d := range []struct{ field, value string }{
		{"birth_date", p.BirthDate},
		{document.TypeIDCard, p.IDCardExpiry},
		{document.TypeHealthCard, p.HealthCardExpiry},
		{"permit_expiry", p.PermitExpiry},
	} {
		if _, err := document.ParseDate(d.field, d.value); err != nil {
			return err
		}
	}
	return nil
}

// ContactPhone resolves the guardian phone to notify about this player.
// Precedence is fixed: mother, then father, then referent. Returns the
// empty string when no guardian phone is on file.
// INVARIANT: Player fields are not mutated
func (p *Player) ContactPhone() string {
	if p.MotherPhone != "" {
		return p.MotherPhone
	}
	if p.FatherPhone != "" {
		return p.FatherPhone
	}
	return p.ReferentPhone
}

// AgeOn returns the player's age in whole years on the given day, or -1
// when no birth date is on file or it does not parse.
func (p *Player) AgeOn(today time.Time) int {
	birth, err := document.ParseDate("birth_date", p.BirthDate)
	if err != nil || birth == nil {
		return -1
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
