// Package report renders a player's full record as a text block suitable
// for sharing over a messaging app. The output is localized; Spanish is
// the club's working language and the default.
package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"clubdesk/internal/domain/document"
	"clubdesk/internal/domain/player"
	"clubdesk/internal/domain/settings"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when the request does not name one.
const DefaultLanguage = "es"

// Builder renders localized player reports.
type Builder struct {
	bundle *i18n.Bundle
}

// NewBuilder loads the embedded locale files.
// POST: Returns a builder ready to render in any supported language
func NewBuilder() (*Builder, error) {
	bundle := i18n.NewBundle(language.Spanish)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("loading locale %s: %w", entry.Name(), err)
		}
	}
	return &Builder{bundle: bundle}, nil
}

// Build renders the report for one player.
// PRE: p has been validated; cfg carries the club alert windows
// POST: Returns a multi-line text block; malformed stored dates read as missing
func (b *Builder) Build(p player.Player, cfg settings.Settings, today time.Time, lang string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	loc := i18n.NewLocalizer(b.bundle, lang, DefaultLanguage)
	msg := func(key string) string {
		out, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err != nil {
			return key
		}
		return out
	}

	var sb strings.Builder
	line := func(labelKey, value string) {
		if value == "" {
			return
		}
		sb.WriteString(msg(labelKey))
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	section := func(key string) {
		sb.WriteString("\n*")
		sb.WriteString(msg(key))
		sb.WriteString("*\n")
	}

	sb.WriteString("*" + msg("report.title") + "*\n")

	section("report.section.personal")
	line("report.field.name", p.FullName)
	if p.ShirtNumber != 0 {
		line("report.field.shirt_number", fmt.Sprintf("%d", p.ShirtNumber))
	}
	line("report.field.birth_date", p.BirthDate)
	if age := p.AgeOn(today); age >= 0 {
		line("report.field.age", fmt.Sprintf("%d", age))
	}
	line("report.field.position", p.Position)

	section("report.section.contact")
	line("report.field.mother", contactLine(p.MotherName, p.MotherPhone))
	line("report.field.father", contactLine(p.FatherName, p.FatherPhone))
	line("report.field.referent", contactLine(p.ReferentName, p.ReferentPhone))
	line("report.field.address", p.Address)

	section("report.section.gear")
	line("report.field.shirt_size", p.ShirtSize)
	line("report.field.short_size", p.ShortSize)
	line("report.field.socks_size", p.SocksSize)
	line("report.field.long_jersey_size", p.LongJerseySize)
	line("report.field.long_shorts_size", p.LongShortsSize)
	line("report.field.jacket_size", p.JacketSize)
	line("report.field.shoe_size", p.ShoeSize)

	section("report.section.documents")
	line("report.field.id_card", p.IDCardNum)
	line("report.field.id_card_expiry", b.expiryLine(msg, p.IDCardExpiry, cfg.IDCardAlertDays, today))
	line("report.field.health_card_expiry", b.expiryLine(msg, p.HealthCardExpiry, cfg.HealthCardAlertDays, today))
	line("report.field.permit", p.PermitInfo)
	if p.PermitExpiry != "" {
		line("report.field.permit_expiry", p.PermitExpiry)
	}
	line("report.field.health_insurance", p.HealthInsurance)
	line("report.field.allergies", p.Allergies)

	return strings.TrimRight(sb.String(), "\n")
}

// expiryLine formats "2026-10-01 (por vencer)" or the missing marker.
func (b *Builder) expiryLine(msg func(string) string, expiry string, windowDays int, today time.Time) string {
	parsed, err := document.ParseDate("expiry", expiry)
	if err != nil || parsed == nil {
		return msg("report.value.missing")
	}
	status := document.Classify(parsed, windowDays, today)
	return fmt.Sprintf("%s (%s)", expiry, msg("status."+string(status)))
}

func contactLine(name, phone string) string {
	switch {
	case name != "" && phone != "":
		return name + " " + phone
	case name != "":
		return name
	default:
		return phone
	}
}
