package report_test

import (
	"strings"
	"testing"
	"time"

	"clubdesk/internal/application/report"
	"clubdesk/internal/domain/player"
	"clubdesk/internal/domain/settings"
)

func testPlayer() player.Player {
	return player.Player{
		ID:               "p1",
		FullName:         "Juan Pérez",
		ShirtNumber:      10,
		BirthDate:        "2015-04-20",
		Position:         "delantero",
		ShirtSize:        "12",
		MotherName:       "María",
		MotherPhone:      "099123456",
		Address:          "Av. Italia 1234",
		IDCardNum:        "5.123.456-7",
		IDCardExpiry:     "2025-12-01",
		HealthCardExpiry: "2026-09-20",
		Allergies:        "penicilina",
	}
}

func TestBuildSpanishDefault(t *testing.T) {
	b, err := report.NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	cfg := settings.Settings{IDCardAlertDays: 30, HealthCardAlertDays: 30}

	text := b.Build(testPlayer(), cfg, today, "")

	for _, want := range []string{
		"*Ficha del jugador*",
		"Nombre: Juan Pérez",
		"Camiseta: 10",
		"Edad: 11",
		"Madre: María 099123456",
		"2025-12-01 (vencido)",
		"2026-09-20 (por vencer)",
		"Alergias: penicilina",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n---\n%s", want, text)
		}
	}
	// empty fields are omitted, not rendered blank
	if strings.Contains(text, "Padre:") {
		t.Errorf("report should omit absent father contact\n---\n%s", text)
	}
}

func TestBuildEnglish(t *testing.T) {
	b, err := report.NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	cfg := settings.Settings{IDCardAlertDays: 30, HealthCardAlertDays: 30}

	text := b.Build(testPlayer(), cfg, today, "en")

	for _, want := range []string{
		"*Player report*",
		"Name: Juan Pérez",
		"2025-12-01 (expired)",
		"2026-09-20 (expiring soon)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n---\n%s", want, text)
		}
	}
}

func TestBuildMissingDocuments(t *testing.T) {
	b, err := report.NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := player.Player{ID: "p2", FullName: "Ana García"}

	text := b.Build(p, settings.Settings{IDCardAlertDays: 30, HealthCardAlertDays: 30}, today, "")

	if got := strings.Count(text, "sin datos"); got != 2 {
		t.Errorf("want both expiries marked 'sin datos', got %d\n---\n%s", got, text)
	}
}
