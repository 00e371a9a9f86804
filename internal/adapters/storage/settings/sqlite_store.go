package settings

import (
	"context"
	"database/sql"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/settings"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new settings Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the club settings row.
// POST: Returns the saved row, or the defaults when none exists yet
func (s *SQLiteStore) Get(ctx context.Context) (domain.Settings, error) {
	query := "SELECT id, id_card_alert_days, health_card_alert_days, updated_at FROM club_settings WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, SingletonID)

	var entity domain.Settings
	var updatedAt string
	err := row.Scan(
		&entity.ID,
		&entity.IDCardAlertDays,
		&entity.HealthCardAlertDays,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		defaults := domain.Default()
		defaults.ID = SingletonID
		return defaults, nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	if t, perr := time.Parse(time.RFC3339, updatedAt); perr == nil {
		entity.UpdatedAt = t
	}
	return entity, nil
}

// Save persists the club settings row.
// PRE: entity has been validated
// POST: The singleton row is inserted or updated
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Settings) error {
	query := `INSERT INTO club_settings (id, id_card_alert_days, health_card_alert_days, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			id_card_alert_days=excluded.id_card_alert_days,
			health_card_alert_days=excluded.health_card_alert_days,
			updated_at=excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		SingletonID,
		entity.IDCardAlertDays,
		entity.HealthCardAlertDays,
		entity.UpdatedAt.Format(time.RFC3339),
	)
	return err
}
