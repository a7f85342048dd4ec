package database

import (
	"database/sql"

	"ledgerbot/internal/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts a new expense row for the given owner. An empty date
// falls back to the insertion time.
func (r *Repository) CreateExpense(ownerID string, amount float64, category, description, date string) (*models.Expense, error) {
	result, err := r.db.Exec(`
		INSERT INTO expenses (owner_id, amount, category, description, date)
		VALUES (?, ?, ?, ?, COALESCE(?, datetime('now')))`,
		ownerID, nullFloat(amount), nullString(category), nullString(description), nullString(date),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetExpense(ownerID, id)
}

func (r *Repository) GetExpense(ownerID string, id int64) (*models.Expense, error) {
	e := &models.Expense{}
	err := r.db.QueryRow(`
		SELECT id, owner_id, amount, category, description, date, created_at
		FROM expenses WHERE id = ? AND owner_id = ?
	`, id, ownerID).Scan(
		&e.ID, &e.OwnerID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repository) ListExpenses(ownerID string, limit, offset int) ([]models.Expense, error) {
	rows, err := r.db.Query(`
		SELECT id, owner_id, amount, category, description, date, created_at
		FROM expenses
		WHERE owner_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ? OFFSET ?
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *Repository) DeleteExpense(ownerID string, id int64) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TotalAmount sums the owner's spending, optionally limited to a date range.
func (r *Repository) TotalAmount(ownerID string, from, to string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE owner_id = ?`
	args := []interface{}{ownerID}

	if from != "" {
		query += ` AND date >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND date <= ?`
		args = append(args, to)
	}

	var total float64
	if err := r.db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CategoryTotals returns the owner's spending grouped by category, largest
// first. Rows without a category are bucketed as "uncategorized".
func (r *Repository) CategoryTotals(ownerID string) ([]models.CategoryTotal, error) {
	rows, err := r.db.Query(`
		SELECT COALESCE(NULLIF(category, ''), 'uncategorized') as category, SUM(amount) as amount
		FROM expenses
		WHERE owner_id = ? AND amount IS NOT NULL
		GROUP BY category
		ORDER BY amount DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.CategoryTotal
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Amount); err != nil {
			return nil, err
		}
		result = append(result, ct)
	}
	return result, rows.Err()
}

// Helper functions for nullable fields
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}
