package orchestrators

import (
	"context"
	"errors"
	"sort"
	"time"

	playerStore "clubdesk/internal/adapters/storage/player"
	"clubdesk/internal/adapters/email"
	"clubdesk/internal/domain/account"
	"clubdesk/internal/domain/match"
	"clubdesk/internal/domain/payment"
	"clubdesk/internal/domain/player"
	"clubdesk/internal/domain/settings"
)

var fixedTime = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

func fixedID() string { return "test-id-001" }

// mockPlayerStore implements PlayerStoreForOrchestrator for testing.
type mockPlayerStore struct {
	players map[string]player.Player
	deleted []string
}

func newMockPlayerStore() *mockPlayerStore {
	return &mockPlayerStore{players: make(map[string]player.Player)}
}

func (m *mockPlayerStore) GetByID(_ context.Context, id string) (player.Player, error) {
	p, ok := m.players[id]
	if !ok {
		return player.Player{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockPlayerStore) Save(_ context.Context, p player.Player) error {
	m.players[p.ID] = p
	return nil
}

func (m *mockPlayerStore) Delete(_ context.Context, id string) error {
	delete(m.players, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// List returns players in name order, like the SQLite store.
func (m *mockPlayerStore) List(_ context.Context, _ playerStore.ListFilter) ([]player.Player, error) {
	var roster []player.Player
	for _, p := range m.players {
		roster = append(roster, p)
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].FullName < roster[j].FullName })
	return roster, nil
}

// mockSettingsStore implements SettingsStoreForOrchestrator for testing.
type mockSettingsStore struct {
	saved *settings.Settings
}

func (m *mockSettingsStore) Get(_ context.Context) (settings.Settings, error) {
	if m.saved == nil {
		return settings.Default(), nil
	}
	return *m.saved, nil
}

func (m *mockSettingsStore) Save(_ context.Context, s settings.Settings) error {
	m.saved = &s
	return nil
}

// mockAccountStore implements the account store interfaces for testing.
type mockAccountStore struct {
	accounts map[string]account.Account // keyed by email
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]account.Account)}
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := m.accounts[email]
	if !ok {
		return account.Account{}, errors.New("not found")
	}
	return a, nil
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	m.accounts[a.Email] = a
	return nil
}

func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.accounts), nil
}

// mockMatchStore implements MatchStoreForOrchestrator for testing.
type mockMatchStore struct {
	matches map[string]match.Match
}

func newMockMatchStore() *mockMatchStore {
	return &mockMatchStore{matches: make(map[string]match.Match)}
}

func (m *mockMatchStore) GetByID(_ context.Context, id string) (match.Match, error) {
	v, ok := m.matches[id]
	if !ok {
		return match.Match{}, errors.New("not found")
	}
	return v, nil
}

func (m *mockMatchStore) Save(_ context.Context, v match.Match) error {
	m.matches[v.ID] = v
	return nil
}

func (m *mockMatchStore) Delete(_ context.Context, id string) error {
	delete(m.matches, id)
	return nil
}

// mockStatStore implements StatStoreForOrchestrator for testing.
type mockStatStore struct {
	stats map[string]match.Stat
}

func newMockStatStore() *mockStatStore {
	return &mockStatStore{stats: make(map[string]match.Stat)}
}

func (m *mockStatStore) Save(_ context.Context, s match.Stat) error {
	m.stats[s.ID] = s
	return nil
}

func (m *mockStatStore) ListByMatch(_ context.Context, matchID string) ([]match.Stat, error) {
	var out []match.Stat
	for _, s := range m.stats {
		if s.MatchID == matchID {
			out = append(out, s)
		}
	}
	return out, nil
}

// mockPaymentStore implements PaymentStoreForOrchestrator and PaymentTotaler.
type mockPaymentStore struct {
	payments map[string]payment.Payment
}

func newMockPaymentStore() *mockPaymentStore {
	return &mockPaymentStore{payments: make(map[string]payment.Payment)}
}

func (m *mockPaymentStore) GetByID(_ context.Context, id string) (payment.Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return payment.Payment{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockPaymentStore) Save(_ context.Context, p payment.Payment) error {
	m.payments[p.ID] = p
	return nil
}

func (m *mockPaymentStore) Delete(_ context.Context, id string) error {
	delete(m.payments, id)
	return nil
}

func (m *mockPaymentStore) PendingTotal(_ context.Context) (int, error) {
	total := 0
	for _, p := range m.payments {
		if p.IsPending() {
			total += p.Amount
		}
	}
	return total, nil
}

// mockEmailSender captures outbound emails for assertions.
type mockEmailSender struct {
	sent []email.SendRequest
	err  error
}

func (m *mockEmailSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.err != nil {
		return email.SendResult{}, m.err
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "mock-1", SentAt: fixedTime}, nil
}
