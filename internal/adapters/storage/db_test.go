package storage

import (
	"database/sql"
	"sort"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// getTableNames returns sorted table names from sqlite_master, excluding internal tables.
func getTableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expectedTables is the sorted list of tables after InitDB.
var expectedTables = []string{
	"account",
	"club_settings",
	"match",
	"payment",
	"player",
	"player_stat",
}

// TestInitDB_Fresh verifies the schema applies cleanly to an empty database.
func TestInitDB_Fresh(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed on fresh db: %v", err)
	}

	tables := getTableNames(t, db)
	if len(tables) != len(expectedTables) {
		t.Errorf("got %d tables, want %d\ngot:  %v\nwant: %v", len(tables), len(expectedTables), tables, expectedTables)
	}
	for i, want := range expectedTables {
		if i >= len(tables) {
			t.Errorf("missing table: %s", want)
			continue
		}
		if tables[i] != want {
			t.Errorf("table[%d] = %q, want %q", i, tables[i], want)
		}
	}
}

// TestInitDB_Idempotent verifies that running InitDB twice produces no errors
// and loses no data.
func TestInitDB_Idempotent(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("first InitDB failed: %v", err)
	}

	_, err := db.Exec(`INSERT INTO player (id, full_name, created_at) VALUES ('p1', 'Juan Pérez', '2026-01-01T00:00:00Z')`)
	if err != nil {
		t.Fatalf("failed to insert test player: %v", err)
	}

	if err := InitDB(db); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}

	var name string
	if err := db.QueryRow("SELECT full_name FROM player WHERE id = 'p1'").Scan(&name); err != nil {
		t.Fatalf("player data lost after re-init: %v", err)
	}
	if name != "Juan Pérez" {
		t.Errorf("player name = %q, want %q", name, "Juan Pérez")
	}
}

// TestInitDB_StatUniquePerMatchPlayer verifies the one-line-per-player-per-match constraint.
func TestInitDB_StatUniquePerMatchPlayer(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	seed := []string{
		`INSERT INTO player (id, full_name, created_at) VALUES ('p1', 'Juan', '2026-01-01T00:00:00Z')`,
		`INSERT INTO match (id, date, rival, status) VALUES ('m1', '2026-09-13', 'Nacional', 'finished')`,
		`INSERT INTO player_stat (id, match_id, player_id, goals) VALUES ('s1', 'm1', 'p1', 1)`,
	}
	for _, q := range seed {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	_, err := db.Exec(`INSERT INTO player_stat (id, match_id, player_id, goals) VALUES ('s2', 'm1', 'p1', 2)`)
	if err == nil {
		t.Error("duplicate (match_id, player_id) stat should be rejected")
	}
}
