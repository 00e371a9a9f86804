package player_test

import (
	"testing"
	"time"

	"clubdesk/internal/domain/player"
)

// TestPlayerValidation tests validation of Player.
func TestPlayerValidation(t *testing.T) {
	tests := []struct {
		name    string
		player  player.Player
		wantErr bool
	}{
		{
			name: "valid player",
			player: player.Player{
				ID:           "123",
				FullName:     "Juan Pérez",
				ShirtNumber:  10,
				BirthDate:    "2017-04-12",
				IDCardExpiry: "2027-06-30",
			},
			wantErr: false,
		},
		{
			name:    "minimal player with only a name",
			player:  player.Player{ID: "123", FullName: "Juan Pérez"},
			wantErr: false,
		},
		{
			name:    "empty name",
			player:  player.Player{ID: "123", FullName: "  "},
			wantErr: true,
		},
		{
			name:    "shirt number out of range",
			player:  player.Player{ID: "123", FullName: "Juan Pérez", ShirtNumber: 120},
			wantErr: true,
		},
		{
			name:    "malformed id card expiry",
			player:  player.Player{ID: "123", FullName: "Juan Pérez", IDCardExpiry: "30/06/2027"},
			wantErr: true,
		},
		{
			name:    "malformed health card expiry",
			player:  player.Player{ID: "123", FullName: "Juan Pérez", HealthCardExpiry: "soon"},
			wantErr: true,
		},
		{
			name:    "phone too long",
			player:  player.Player{ID: "123", FullName: "Juan Pérez", MotherPhone: "099 123 456 099 123 456 099 123 456"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.player.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Player.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPlayerContactPhone tests the mother -> father -> referent precedence.
func TestPlayerContactPhone(t *testing.T) {
	tests := []struct {
		name   string
		player player.Player
		want   string
	}{
		{"mother wins", player.Player{MotherPhone: "099111111", FatherPhone: "099222222", ReferentPhone: "099333333"}, "099111111"},
		{"father when mother absent", player.Player{FatherPhone: "099222222", ReferentPhone: "099333333"}, "099222222"},
		{"referent when parents absent", player.Player{ReferentPhone: "099333333"}, "099333333"},
		{"no phones on file", player.Player{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.player.ContactPhone(); got != tt.want {
				t.Errorf("ContactPhone() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestPlayerAgeOn tests whole-year age calculation.
func TestPlayerAgeOn(t *testing.T) {
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		birth string
		want  int
	}{
		{"birthday already passed this year", "2017-04-12", 9},
		{"birthday later this year", "2017-11-30", 8},
		{"birthday today", "2017-09-01", 9},
		{"no birth date", "", -1},
		{"malformed birth date", "12-04-2017", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := player.Player{BirthDate: tt.birth}
			if got := p.AgeOn(today); got != tt.want {
				t.Errorf("AgeOn() = %d, want %d", got, tt.want)
			}
		})
	}
}
