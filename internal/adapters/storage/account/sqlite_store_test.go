package account_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/storage"
	accountStore "clubdesk/internal/adapters/storage/account"
	domain "clubdesk/internal/domain/account"
)

func newTestStore(t *testing.T) *accountStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return accountStore.NewSQLiteStore(db)
}

func sampleAccount(id, email string) domain.Account {
	return domain.Account{
		ID:           id,
		Email:        email,
		PasswordHash: "$2a$12$fakehashfortest",
		Role:         domain.RoleAdmin,
		FullName:     "Admin de prueba",
		CreatedAt:    time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestAccountStore_SaveAndGet verifies the upsert round trip by id and email.
func TestAccountStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := sampleAccount("acc1", "admin@club.uy")
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByID(ctx, "acc1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "admin@club.uy" || got.Role != domain.RoleAdmin {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, a.CreatedAt)
	}

	byEmail, err := store.GetByEmail(ctx, "admin@club.uy")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != "acc1" {
		t.Errorf("GetByEmail ID = %q", byEmail.ID)
	}
}

// TestAccountStore_LockoutRoundTrip verifies locked_until persistence.
func TestAccountStore_LockoutRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := sampleAccount("acc1", "admin@club.uy")
	a.FailedLogins = 5
	a.LockedUntil = time.Date(2026, 9, 1, 12, 15, 0, 0, time.UTC)
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByID(ctx, "acc1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FailedLogins != 5 || !got.LockedUntil.Equal(a.LockedUntil) {
		t.Errorf("lockout fields: %+v", got)
	}

	// Clearing the lock stores NULL again
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save (clear): %v", err)
	}
	got, _ = store.GetByID(ctx, "acc1")
	if !got.LockedUntil.IsZero() {
		t.Errorf("LockedUntil = %v, want zero", got.LockedUntil)
	}
}

// TestAccountStore_ListAndCount verifies email ordering and the seed guard count.
func TestAccountStore_ListAndCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b := sampleAccount("acc2", "zulma@club.uy")
	b.Role = domain.RoleHelper
	for _, a := range []domain.Account{b, sampleAccount("acc1", "admin@club.uy")} {
		if err := store.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Email != "admin@club.uy" {
		t.Errorf("list = %+v", list)
	}

	count, err := store.Count(ctx)
	if err != nil || count != 2 {
		t.Errorf("Count = %d, %v; want 2", count, err)
	}

	if err := store.Delete(ctx, "acc2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	count, _ = store.Count(ctx)
	if count != 1 {
		t.Errorf("Count after delete = %d, want 1", count)
	}
}
