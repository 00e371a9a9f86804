package match

import (
	"context"
	"database/sql"
	"fmt"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/match"
)

const matchColumns = "id, date, rival, venue, score_home, score_away, status"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new match Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanMatch(scan func(dest ...any) error) (domain.Match, error) {
	var entity domain.Match
	err := scan(
		&entity.ID,
		&entity.Date,
		&entity.Rival,
		&entity.Venue,
		&entity.ScoreHome,
		&entity.ScoreAway,
		&entity.Status,
	)
	return entity, err
}

// GetByID retrieves a Match by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Match, error) {
	query := "SELECT " + matchColumns + " FROM match WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)
	entity, err := scanMatch(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Match{}, fmt.Errorf("match not found: %w", err)
	}
	return entity, err
}

// Save persists a Match to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Match) error {
	query := `INSERT INTO match (id, date, rival, venue, score_home, score_away, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date=excluded.date,
			rival=excluded.rival,
			venue=excluded.venue,
			score_home=excluded.score_home,
			score_away=excluded.score_away,
			status=excluded.status`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Date,
		entity.Rival,
		entity.Venue,
		entity.ScoreHome,
		entity.ScoreAway,
		entity.Status,
	)
	return err
}

// Delete removes a Match and its stat lines.
// PRE: id is non-empty
// POST: Match and dependent stats are removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM player_stat WHERE match_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM match WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

// List retrieves Matches ordered by date descending (most recent first).
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Match, error) {
	query := "SELECT " + matchColumns + " FROM match WHERE 1=1"
	var args []any

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY date DESC"

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

	var results []domain.Match
	for rows.Next() {
		entity, err := scanMatch(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// StatSQLiteStore implements StatStore using SQLite.
type StatSQLiteStore struct {
	db storage.SQLDB
}

// NewStatSQLiteStore creates a new StatStore.
func NewStatSQLiteStore(db storage.SQLDB) *StatSQLiteStore {
	return &StatSQLiteStore{db: db}
}

const statColumns = "id, match_id, player_id, goals, assists, yellow_cards, red_cards"

func scanStat(scan func(dest ...any) error) (domain.Stat, error) {
	var entity domain.Stat
	err := scan(
		&entity.ID,
		&entity.MatchID,
		&entity.PlayerID,
		&entity.Goals,
		&entity.Assists,
		&entity.YellowCards,
		&entity.RedCards,
	)
	return entity, err
}

// Save persists a Stat line. One line per player per match; a second save
// for the same pair updates the counters in place.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *StatSQLiteStore) Save(ctx context.Context, entity domain.Stat) error {
	query := `INSERT INTO player_stat (id, match_id, player_id, goals, assists, yellow_cards, red_cards)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id, player_id) DO UPDATE SET
			goals=excluded.goals,
			assists=excluded.assists,
			yellow_cards=excluded.yellow_cards,
			red_cards=excluded.red_cards`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.MatchID,
		entity.PlayerID,
		entity.Goals,
		entity.Assists,
		entity.YellowCards,
		entity.RedCards,
	)
	return err
}

// Delete removes a Stat line.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *StatSQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM player_stat WHERE id = ?", id)
	return err
}

// ListByMatch retrieves all stat lines for a match.
// PRE: matchID is non-empty
// POST: Returns matching entities
func (s *StatSQLiteStore) ListByMatch(ctx context.Context, matchID string) ([]domain.Stat, error) {
	return s.list(ctx, "SELECT "+statColumns+" FROM player_stat WHERE match_id = ?", matchID)
}

// ListByPlayer retrieves all stat lines for a player across matches.
// PRE: playerID is non-empty
// POST: Returns matching entities
func (s *StatSQLiteStore) ListByPlayer(ctx context.Context, playerID string) ([]domain.Stat, error) {
	return s.list(ctx, "SELECT "+statColumns+" FROM player_stat WHERE player_id = ?", playerID)
}

func (s *StatSQLiteStore) list(ctx context.Context, query string, arg string) ([]domain.Stat, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Stat
	for rows.Next() {
		entity, err := scanStat(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
