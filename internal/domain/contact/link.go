package contact

import (
	"net/url"
	"strings"
)

// messagingDomain is the WhatsApp click-to-chat host.
const messagingDomain = "https://wa.me/"

// minLinkDigits is the minimum digit count for a dialable deep link.
// Shorter results mean the stored phone is partial and no link is offered.
const minLinkDigits = 10

// Normalizer maps a cleaned digit string onto a full international number
// for one national numbering plan. Implementations return the input
// unchanged when the pattern does not apply.
type Normalizer interface {
	Normalize(digits string) string
}

// UruguayPlan normalizes Uruguayan mobile numbers: a local 09x number
// becomes 598 9x..., with or without the leading zero.
type UruguayPlan struct{}

// Normalize applies the Uruguayan mobile heuristics.
// INVARIANT: input that matches neither pattern is returned unchanged
func (UruguayPlan) Normalize(digits string) string {
	if len(digits) == 9 && strings.HasPrefix(digits, "09") {
		return "598" + digits[1:]
	}
	if len(digits) == 8 && strings.HasPrefix(digits, "9") {
		return "598" + digits
	}
	return digits
}

// DefaultPlan is the numbering plan used by BuildLink. The club operates in
// a single country today; other plans implement Normalizer.
var DefaultPlan Normalizer = UruguayPlan{}

// stripNonDigits removes every non-digit rune from a raw phone string.
func stripNonDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink turns a free-text phone number and a message into a WhatsApp
// deep link. Returns ok=false when the number normalizes to fewer than ten
// digits; callers then degrade to ShareLink. Pure and idempotent.
// PRE: none; phone and message may both be empty
// POST: Returns a URL string and true, or "" and false
func BuildLink(phone, message string) (string, bool) {
	digits := DefaultPlan.Normalize(stripNonDigits(phone))
	if len(digits) < minLinkDigits {
		return "", false
	}
	link := messagingDomain + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link, true
}

// ShareLink builds a recipient-less compose link carrying only the message.
// Used when no usable guardian phone is on file.
func ShareLink(message string) string {
	if message == "" {
		return messagingDomain
	}
	return messagingDomain + "?text=" + url.QueryEscape(message)
}
