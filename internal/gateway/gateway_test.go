package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ledgerbot/internal/database"
)

func newTestGateway(t *testing.T) (*Gateway, *database.Repository) {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), database.NewRepository(db)
}

func TestRejectsDisallowedVerbs(t *testing.T) {
	gw, repo := newTestGateway(t)
	ctx := context.Background()

	_, err := repo.CreateExpense("+1111", 500, "food", "lunch", "")
	require.NoError(t, err)

	cases := []string{
		"DROP TABLE expenses",
		"PRAGMA table_info(expenses)",
		"CREATE TABLE sneaky (id INTEGER)",
		"ALTER TABLE expenses ADD COLUMN x TEXT",
		"tell me everything",
		"",
	}

	for _, command := range cases {
		result := gw.Execute(ctx, command, "+1111")
		require.Equal(t, invalidQueryMsg, result, "command: %q", command)
	}

	// The table survived: the commands never reached the store
	rows, err := repo.ListExpenses("+1111", 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRejectsForeignOwnerLiteral(t *testing.T) {
	gw, _ := newTestGateway(t)

	result := gw.Execute(context.Background(),
		"SELECT amount FROM expenses WHERE owner_id = '+2222'", "+1111")
	require.Contains(t, result, "does not belong to the requesting user")
}

func TestInsertThenSelectRoundTrip(t *testing.T) {
	gw, _ := newTestGateway(t)
	ctx := context.Background()

	result := gw.Execute(ctx,
		"INSERT INTO expenses (owner_id, amount, category, description) VALUES ('+1111', 500, 'food', 'lunch')",
		"+1111")
	require.Equal(t, "Query executed successfully.", result)

	result = gw.Execute(ctx,
		"SELECT amount, category FROM expenses WHERE owner_id = '+1111'", "+1111")
	require.Equal(t, "[(500, 'food')]", result)
}

func TestSelectWithNoRows(t *testing.T) {
	gw, _ := newTestGateway(t)

	result := gw.Execute(context.Background(),
		"SELECT amount, category FROM expenses WHERE owner_id = '+1111'", "+1111")
	require.Equal(t, "[]", result)
}

func TestAggregateOverEmptyTable(t *testing.T) {
	gw, _ := newTestGateway(t)

	result := gw.Execute(context.Background(),
		"SELECT SUM(amount) FROM expenses WHERE owner_id = '+1111'", "+1111")
	require.Equal(t, "[(NULL)]", result)
}

func TestMalformedCommandReturnsErrorText(t *testing.T) {
	gw, _ := newTestGateway(t)

	result := gw.Execute(context.Background(), "SELECT FROM WHERE", "+1111")
	require.Contains(t, result, "Error executing query:")
}

func TestWriteErrorLeavesNoRows(t *testing.T) {
	gw, repo := newTestGateway(t)

	result := gw.Execute(context.Background(),
		"INSERT INTO expenses (owner_id, nonexistent) VALUES ('+1111', 1)", "+1111")
	require.Contains(t, result, "Error executing query:")

	rows, err := repo.ListExpenses("+1111", 10, 0)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestUpdateAndDeleteAllowed(t *testing.T) {
	gw, repo := newTestGateway(t)
	ctx := context.Background()

	e, err := repo.CreateExpense("+1111", 500, "food", "lunch", "")
	require.NoError(t, err)

	result := gw.Execute(ctx,
		"UPDATE expenses SET amount = 450 WHERE owner_id = '+1111' AND category = 'food'", "+1111")
	require.Equal(t, "Query executed successfully.", result)

	updated, err := repo.GetExpense("+1111", e.ID)
	require.NoError(t, err)
	require.Equal(t, 450.0, updated.Amount.Float64)

	result = gw.Execute(ctx,
		"DELETE FROM expenses WHERE owner_id = '+1111' AND category = 'food'", "+1111")
	require.Equal(t, "Query executed successfully.", result)

	rows, err := repo.ListExpenses("+1111", 10, 0)
	require.NoError(t, err)
	require.Empty(t, rows)
}
