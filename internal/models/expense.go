package models

import (
	"database/sql"
)

// Expense is one row in the expenses ledger. Amount, category and description
// may be NULL when the interpreter recorded a partial entry.
type Expense struct {
	ID          int64           `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Amount      sql.NullFloat64 `json:"amount"`
	Category    sql.NullString  `json:"category"`
	Description sql.NullString  `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"created_at"`
}

// ExpenseView is the JSON-friendly shape returned by the API handlers.
type ExpenseView struct {
	ID          int64   `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
}

func (e *Expense) ToView() ExpenseView {
	view := ExpenseView{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}

	if e.Amount.Valid {
		view.Amount = e.Amount.Float64
	}
	if e.Category.Valid {
		view.Category = e.Category.String
	}
	if e.Description.Valid {
		view.Description = e.Description.String
	}

	return view
}

// CategoryTotal is aggregated spending for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
