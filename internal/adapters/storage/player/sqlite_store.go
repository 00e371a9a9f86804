package player

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/player"
)

// playerColumns is the column list shared by every SELECT in this store.
const playerColumns = "id, full_name, photo_url, shirt_number, birth_date, position, " +
	"shirt_size, short_size, socks_size, long_jersey_size, long_shorts_size, jacket_size, shoe_size, " +
	"mother_name, mother_phone, father_name, father_phone, referent_name, referent_phone, address, " +
	"id_card_num, id_card_expiry, id_card_url, health_card_expiry, health_card_url, " +
	"permit_info, permit_expiry, health_insurance, allergies, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new player Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanPlayer(scan func(dest ...any) error) (domain.Player, error) {
	var entity domain.Player
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.FullName,
		&entity.PhotoURL,
		&entity.ShirtNumber,
		&entity.BirthDate,
		&entity.Position,
		&entity.ShirtSize,
		&entity.ShortSize,
		&entity.SocksSize,
		&entity.LongJerseySize,
		&entity.LongShortsSize,
		&entity.JacketSize,
		&entity.ShoeSize,
		&entity.MotherName,
		&entity.MotherPhone,
		&entity.FatherName,
		&entity.FatherPhone,
		&entity.ReferentName,
		&entity.ReferentPhone,
		&entity.Address,
		&entity.IDCardNum,
		&entity.IDCardExpiry,
		&entity.IDCardURL,
		&entity.HealthCardExpiry,
		&entity.HealthCardURL,
		&entity.PermitInfo,
		&entity.PermitExpiry,
		&entity.HealthInsurance,
		&entity.Allergies,
		&createdAt,
	)
	if err != nil {
		return domain.Player{}, err
	}
	if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		entity.CreatedAt = t
	}
	return entity, nil
}

// GetByID retrieves a Player by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Player, error) {
	query := "SELECT " + playerColumns + " FROM player WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)
	entity, err := scanPlayer(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Player{}, fmt.Errorf("player not found: %w", err)
	}
	return entity, err
}

// Save persists a Player to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Upsert implementation
	fields := strings.Split(playerColumns, ", ")
	placeholders := make([]string, len(fields))
	updates := make([]string, 0, len(fields)-1)
	for i, f := range fields {
		placeholders[i] = "?"
		if f != "id" {
			updates = append(updates, f+"=excluded."+f)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO player (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		playerColumns,
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.FullName,
		entity.PhotoURL,
		entity.ShirtNumber,
		entity.BirthDate,
		entity.Position,
		entity.ShirtSize,
		entity.ShortSize,
		entity.SocksSize,
		entity.LongJerseySize,
		entity.LongShortsSize,
		entity.JacketSize,
		entity.ShoeSize,
		entity.MotherName,
		entity.MotherPhone,
		entity.FatherName,
		entity.FatherPhone,
		entity.ReferentName,
		entity.ReferentPhone,
		entity.Address,
		entity.IDCardNum,
		entity.IDCardExpiry,
		entity.IDCardURL,
		entity.HealthCardExpiry,
		entity.HealthCardURL,
		entity.PermitInfo,
		entity.PermitExpiry,
		entity.HealthInsurance,
		entity.Allergies,
		entity.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Player and its dependent rows.
// PRE: id is non-empty
// POST: Player, its stats, and its payments are removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM player_stat WHERE player_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM payment WHERE player_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM player WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

// listWhereClause builds the WHERE clause and args for List/Count queries.
func listWhereClause(filter ListFilter) (string, []any) {
	where := " WHERE 1=1"
	var args []any

	if filter.Position != "" {
		where += " AND position = ?"
		args = append(args, filter.Position)
	}
	if filter.Search != "" {
		where += " AND full_name LIKE ?"
		args = append(args, "%"+filter.Search+"%")
	}
	return where, args
}

// Count returns the total number of players matching the filter.
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := listWhereClause(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM player"+where, args...).Scan(&count)
	return count, err
}

// List retrieves Players in roster order (name ascending).
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Player, error) {
	where, args := listWhereClause(filter)
	query := "SELECT " + playerColumns + " FROM player" + where + " ORDER BY full_name ASC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Player
	for rows.Next() {
		entity, err := scanPlayer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
