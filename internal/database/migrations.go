package database

import "database/sql"

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS expenses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id TEXT NOT NULL,
		amount REAL,
		category TEXT,
		description TEXT,
		date TEXT NOT NULL DEFAULT (datetime('now')),
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_expenses_owner_id ON expenses(owner_id);
	CREATE INDEX IF NOT EXISTS idx_expenses_owner_date ON expenses(owner_id, date);
	CREATE INDEX IF NOT EXISTS idx_expenses_owner_category ON expenses(owner_id, category);
	`

	_, err := db.Exec(schema)
	return err
}
