package document_test

import (
	"errors"
	"testing"
	"time"

	"clubdesk/internal/domain/document"
)

var today = time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// TestClassify covers the four labels and both boundaries.
func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		expiry *time.Time
		window int
		want   document.Status
	}{
		{"no date on file", nil, 30, document.StatusMissing},
		{"no date ignores window", nil, 1, document.StatusMissing},
		{"expired years ago", date(2020, 1, 1), 30, document.StatusExpired},
		{"expired yesterday", date(2025, 12, 31), 30, document.StatusExpired},
		{"expires today is not expired", date(2026, 1, 1), 30, document.StatusExpiringSoon},
		{"seven days out inside ten day window", date(2026, 1, 8), 10, document.StatusExpiringSoon},
		{"exactly window days out is expiring", date(2026, 1, 31), 30, document.StatusExpiringSoon},
		{"one day past the window", date(2026, 2, 1), 30, document.StatusCurrent},
		{"thirty one days out with ten day window", date(2026, 2, 1), 10, document.StatusCurrent},
		{"month rollover uses calendar days", date(2026, 3, 1), 60, document.StatusExpiringSoon},
		{"zero window falls back to default", date(2026, 1, 15), 0, document.StatusExpiringSoon},
		{"negative window falls back to default", date(2026, 6, 1), -5, document.StatusCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := document.Classify(tt.expiry, tt.window, today); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestClassifyExpiredBeforeWindow verifies that the expired check short-circuits
// the window check: an expired document is never reported as expiring soon,
// however wide the window.
func TestClassifyExpiredBeforeWindow(t *testing.T) {
	got := document.Classify(date(2025, 12, 20), 365, today)
	if got != document.StatusExpired {
		t.Errorf("Classify() = %v, want %v", got, document.StatusExpired)
	}
}

// TestClassifyIgnoresTimeOfDay verifies the midnight normalization: any
// time-of-day on the same calendar day produces the same label.
func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	expiry := date(2026, 1, 1)
	for _, hour := range []int{0, 11, 23} {
		now := time.Date(2026, 1, 1, hour, 59, 59, 0, time.UTC)
		if got := document.Classify(expiry, 30, now); got == document.StatusExpired {
			t.Errorf("hour %d: expiry equal to today must not be expired", hour)
		}
	}
}

// TestParseDate tests absent, valid and malformed date strings.
func TestParseDate(t *testing.T) {
	t.Run("empty string is absent", func(t *testing.T) {
		got, err := document.ParseDate(document.TypeIDCard, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil date, got %v", got)
		}
	})

	t.Run("valid date", func(t *testing.T) {
		got, err := document.ParseDate(document.TypeIDCard, "2026-01-08")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || !got.Equal(time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("ParseDate() = %v, want 2026-01-08", got)
		}
	})

	t.Run("malformed date is a ValidationError", func(t *testing.T) {
		for _, bad := range []string{"garbage", "08/01/2026", "2026-13-40", "2026-1-8"} {
			_, err := document.ParseDate(document.TypeHealthCard, bad)
			var verr *document.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("ParseDate(%q) error = %v, want ValidationError", bad, err)
			}
		}
	})
}
