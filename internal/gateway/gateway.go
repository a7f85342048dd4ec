// Package gateway is the single chokepoint between model-generated SQL and
// the expenses table. Commands are checked against a verb allow-list and the
// requesting owner before they reach the database, and every failure comes
// back as plain text so the interpreter loop can recover instead of crashing.
package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	verbRegex         = regexp.MustCompile(`(?i)^\s*(SELECT|INSERT|UPDATE|DELETE)\b`)
	ownerLiteralRegex = regexp.MustCompile(`(?i)owner_id\s*=\s*'([^']*)'`)
)

const invalidQueryMsg = "Invalid query. Only SELECT, INSERT, UPDATE, and DELETE queries are allowed."

type Gateway struct {
	db *sql.DB
}

func New(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

// Execute runs one data command on behalf of ownerID and returns a textual
// result. SELECTs return serialized rows, writes return an acknowledgement.
// Errors are returned as text, never as a fault: the observation feeds back
// into the model so it can correct itself.
//
// Owner scoping is verified where feasible: any owner_id literal in the
// command must match the calling session. A command with no owner predicate
// executes as given; the system prompt is responsible for scoping and the
// gateway does not rewrite commands.
func (g *Gateway) Execute(ctx context.Context, command, ownerID string) string {
	command = strings.TrimSpace(command)

	if !verbRegex.MatchString(command) {
		return invalidQueryMsg
	}

	for _, m := range ownerLiteralRegex.FindAllStringSubmatch(command, -1) {
		if m[1] != ownerID {
			return fmt.Sprintf("Error executing query: owner_id '%s' does not belong to the requesting user", m[1])
		}
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Sprintf("Error executing query: %v", err)
	}

	if strings.HasPrefix(strings.ToUpper(command), "SELECT") {
		rows, err := tx.QueryContext(ctx, command)
		if err != nil {
			tx.Rollback()
			return fmt.Sprintf("Error executing query: %v", err)
		}
		result, err := serializeRows(rows)
		rows.Close()
		if err != nil {
			tx.Rollback()
			return fmt.Sprintf("Error executing query: %v", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Sprintf("Error executing query: %v", err)
		}
		return result
	}

	if _, err := tx.ExecContext(ctx, command); err != nil {
		tx.Rollback()
		return fmt.Sprintf("Error executing query: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Sprintf("Error executing query: %v", err)
	}
	return "Query executed successfully."
}

// serializeRows renders a result set as a bracketed list of tuples, the shape
// the interpreter's prompt examples use.
func serializeRows(rows *sql.Rows) (string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return "", err
	}

	var tuples []string
	for rows.Next() {
		values := make([]interface{}, len(cols))
		scanArgs := make([]interface{}, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return "", err
		}

		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = formatValue(v)
		}
		tuples = append(tuples, "("+strings.Join(parts, ", ")+")")
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	return "[" + strings.Join(tuples, ", ") + "]", nil
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return "'" + string(val) + "'"
	case string:
		return "'" + val + "'"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
