package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies the embedded SQL migrations in filename order. Applied
// filenames are recorded in schema_migrations so reruns are no-ops, and
// a MySQL advisory lock keeps concurrent server starts from racing.
func Migrate(ctx context.Context, db *sql.DB) error {
	// GET_LOCK is session-scoped, so the lock must be taken and released
	// on one dedicated connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Close()

	var got int
	if err := conn.QueryRowContext(ctx, "SELECT GET_LOCK('workspace_booking_migrate', 30)").Scan(&got); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	if got != 1 {
		return fmt.Errorf("advisory lock: timed out waiting for another migrator")
	}
	defer conn.ExecContext(ctx, "SELECT RELEASE_LOCK('workspace_booking_migrate')")

	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		filename VARCHAR(255) NOT NULL PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		err := conn.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE filename=?", name).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}
		body, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(body)) {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply %s: %w", name, err)
			}
		}
		if _, err := conn.ExecContext(ctx,
			"INSERT INTO schema_migrations (filename) VALUES (?)", name); err != nil {
			return fmt.Errorf("record %s: %w", name, err)
		}
	}
	return nil
}

// splitStatements breaks a migration file on semicolons at line ends.
// The MySQL driver executes one statement per call.
func splitStatements(body string) []string {
	var stmts []string
	var cur []byte
	for i := 0; i < len(body); i++ {
		cur = append(cur, body[i])
		if body[i] == ';' {
			if s := trimSQL(string(cur)); s != "" {
				stmts = append(stmts, s)
			}
			cur = cur[:0]
		}
	}
	if s := trimSQL(string(cur)); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

func trimSQL(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\n' || s[start] == '\t' || s[start] == '\r') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\n' || s[end-1] == '\t' || s[end-1] == '\r' || s[end-1] == ';') {
		end--
	}
	return s[start:end]
}
