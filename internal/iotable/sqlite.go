package iotable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnredlist/pkg/aggregate"
	_ "modernc.org/sqlite"
)

const (
	// SQLiteTable is the name of the time-series table.
	SQLiteTable = "time_series"
	// SQLiteMetaTable keeps key-value information about the run that
	// created the file.
	SQLiteMetaTable = "metadata"
)

// Meta describes the run that produced a table.
type Meta struct {
	RunID     string
	SplitYear int
	Version   string
}

// WriteSQLite saves the table into a new SQLite file. Every column is
// TEXT, null cells become SQL NULL. An existing file is replaced.
func WriteSQLite(
	ctx context.Context,
	path string,
	t *aggregate.Table,
	meta Meta,
) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return SQLiteWriteError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteWriteError(path, err)
	}
	defer db.Close()

	if err = writeTables(ctx, db, t, meta); err != nil {
		return SQLiteWriteError(path, err)
	}
	return nil
}

func writeTables(
	ctx context.Context,
	db *sql.DB,
	t *aggregate.Table,
	meta Meta,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, createTableSQL(t.Columns)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(t.Columns))
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	for i := range t.Rows {
		vals, nulls := t.Strings(i)
		for j := range vals {
			args[j] = vals[j]
			if nulls[j] {
				args[j] = nil
			}
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err = writeMeta(ctx, tx, meta, len(t.Rows)); err != nil {
		return err
	}
	return tx.Commit()
}

func writeMeta(ctx context.Context, tx *sql.Tx, meta Meta, rows int) error {
	q := "CREATE TABLE " + SQLiteMetaTable +
		" (key TEXT PRIMARY KEY, value TEXT NOT NULL)"
	if _, err := tx.ExecContext(ctx, q); err != nil {
		return err
	}

	kv := [][2]string{
		{"run_id", meta.RunID},
		{"split_year", strconv.Itoa(meta.SplitYear)},
		{"version", meta.Version},
		{"rows", strconv.Itoa(rows)},
		{"created_at", time.Now().UTC().Format(time.RFC3339)},
	}
	q = "INSERT INTO " + SQLiteMetaTable + " (key, value) VALUES (?, ?)"
	for _, v := range kv {
		if _, err := tx.ExecContext(ctx, q, v[0], v[1]); err != nil {
			return err
		}
	}
	return nil
}

func createTableSQL(cols []string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quote(c) + " TEXT"
	}
	return "CREATE TABLE " + SQLiteTable + " (" + strings.Join(defs, ", ") + ")"
}

func insertSQL(cols []string) string {
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quote(c)
		marks[i] = "?"
	}
	return "INSERT INTO " + SQLiteTable + " (" + strings.Join(names, ", ") +
		") VALUES (" + strings.Join(marks, ", ") + ")"
}

// quote makes an SQL identifier of a column name.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
