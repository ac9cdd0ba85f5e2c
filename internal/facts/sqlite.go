package facts

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver.
)

// OpenSQLite loads facts from a SQLite database with a facts(subject, category)
// table. When a categories(name, position) table exists it defines the vocabulary order.
func OpenSQLite(ctx context.Context, path string) (*Set, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close for read-only fact database.
			_ = cerr
		}
	}()

	facts, err := queryFacts(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	vocabulary, err := queryCategories(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(path, facts, vocabulary)
}

func queryFacts(ctx context.Context, db *sql.DB) ([]Fact, error) {
	rows, err := db.QueryContext(ctx, `SELECT subject, category FROM facts ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()

	var out []Fact
	for rows.Next() {
		var f Fact
		if err := rows.Scan(&f.Subject, &f.Category); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// queryCategories returns nil when the database has no categories table.
func queryCategories(ctx context.Context, db *sql.DB) ([]string, error) {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'categories'`,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT name FROM categories ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// WriteSQLite creates or replaces the facts and categories tables at path with src.
func WriteSQLite(ctx context.Context, path string, src Source) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmts := []string{
		`DROP TABLE IF EXISTS facts;`,
		`DROP TABLE IF EXISTS categories;`,
		`CREATE TABLE facts (
			subject TEXT NOT NULL,
			category TEXT NOT NULL
		);`,
		`CREATE TABLE categories (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for i, c := range src.Vocabulary() {
		if _, err = tx.ExecContext(ctx, `INSERT INTO categories (name, position) VALUES (?, ?)`, c, i); err != nil {
			return err
		}
	}
	for i := 0; i < src.Len(); i++ {
		f := src.At(i)
		if _, err = tx.ExecContext(ctx, `INSERT INTO facts (subject, category) VALUES (?, ?)`, f.Subject, f.Category); err != nil {
			return err
		}
	}
	return tx.Commit()
}
