package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS player (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		photo_url TEXT NOT NULL DEFAULT '',
		shirt_number INTEGER NOT NULL DEFAULT 0,
		birth_date TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		shirt_size TEXT NOT NULL DEFAULT '',
		short_size TEXT NOT NULL DEFAULT '',
		socks_size TEXT NOT NULL DEFAULT '',
		long_jersey_size TEXT NOT NULL DEFAULT '',
		long_shorts_size TEXT NOT NULL DEFAULT '',
		jacket_size TEXT NOT NULL DEFAULT '',
		shoe_size TEXT NOT NULL DEFAULT '',
		mother_name TEXT NOT NULL DEFAULT '',
		mother_phone TEXT NOT NULL DEFAULT '',
		father_name TEXT NOT NULL DEFAULT '',
		father_phone TEXT NOT NULL DEFAULT '',
		referent_name TEXT NOT NULL DEFAULT '',
		referent_phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		id_card_num TEXT NOT NULL DEFAULT '',
		id_card_expiry TEXT NOT NULL DEFAULT '',
		id_card_url TEXT NOT NULL DEFAULT '',
		health_card_expiry TEXT NOT NULL DEFAULT '',
		health_card_url TEXT NOT NULL DEFAULT '',
		permit_info TEXT NOT NULL DEFAULT '',
		permit_expiry TEXT NOT NULL DEFAULT '',
		health_insurance TEXT NOT NULL DEFAULT '',
		allergies TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS club_settings (
		id TEXT PRIMARY KEY,
		id_card_alert_days INTEGER NOT NULL DEFAULT 30,
		health_card_alert_days INTEGER NOT NULL DEFAULT 30,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS match (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		rival TEXT NOT NULL,
		venue TEXT NOT NULL DEFAULT '',
		score_home INTEGER NOT NULL DEFAULT 0,
		score_away INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS player_stat (
		id TEXT PRIMARY KEY,
		match_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		goals INTEGER NOT NULL DEFAULT 0,
		assists INTEGER NOT NULL DEFAULT 0,
		yellow_cards INTEGER NOT NULL DEFAULT 0,
		red_cards INTEGER NOT NULL DEFAULT 0,
		UNIQUE (match_id, player_id),
		FOREIGN KEY (match_id) REFERENCES match(id),
		FOREIGN KEY (player_id) REFERENCES player(id)
	);

	CREATE TABLE IF NOT EXISTS payment (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		category TEXT NOT NULL,
		status TEXT NOT NULL,
		due_date TEXT NOT NULL,
		paid_date TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (player_id) REFERENCES player(id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
