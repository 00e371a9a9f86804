package payment

import (
	"context"
	"database/sql"
	"fmt"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/payment"
)

const paymentColumns = "id, player_id, amount, category, status, due_date, paid_date, notes"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new payment Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanPayment(scan func(dest ...any) error) (domain.Payment, error) {
	var entity domain.Payment
	err := scan(
		&entity.ID,
		&entity.PlayerID,
		&entity.Amount,
		&entity.Category,
		&entity.Status,
		&entity.DueDate,
		&entity.PaidDate,
		&entity.Notes,
	)
	return entity, err
}

// GetByID retrieves a Payment by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payment WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)
	entity, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("payment not found: %w", err)
	}
	return entity, err
}

// Save persists a Payment to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Payment) error {
	query := `INSERT INTO payment (id, player_id, amount, category, status, due_date, paid_date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			player_id=excluded.player_id,
			amount=excluded.amount,
			category=excluded.category,
			status=excluded.status,
			due_date=excluded.due_date,
			paid_date=excluded.paid_date,
			notes=excluded.notes`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.PlayerID,
		entity.Amount,
		entity.Category,
		entity.Status,
		entity.DueDate,
		entity.PaidDate,
		entity.Notes,
	)
	return err
}

// Delete removes a Payment from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM payment WHERE id = ?", id)
	return err
}

// listWhereClause builds the WHERE clause and args for List queries.
func listWhereClause(filter ListFilter) (string, []any) {
	where := " WHERE 1=1"
	var args []any

	if filter.PlayerID != "" {
		where += " AND player_id = ?"
		args = append(args, filter.PlayerID)
	}
	if filter.Category != "" {
		where += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	return where, args
}

// List retrieves Payments ordered by due date ascending.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Payment, error) {
	where, args := listWhereClause(filter)
	query := "SELECT " + paymentColumns + " FROM payment" + where + " ORDER BY due_date ASC"

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

	var results []domain.Payment
	for rows.Next() {
		entity, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// PendingTotal returns the sum in cents of all pending payments.
// POST: Returns total >= 0
func (s *SQLiteStore) PendingTotal(ctx context.Context) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM payment WHERE status = ?",
		domain.StatusPending,
	).Scan(&total)
	return total, err
}
