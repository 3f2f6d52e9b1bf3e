package db

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// sqliteTimeLayout is fixed-width so stored timestamps sort as text.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

func FormatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, s)
}

// OpenSQLite opens (creating if needed) a SQLite database at path.
func OpenSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// modernc serializes writers; one connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err := initSQLiteSchema(conn); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	return conn, nil
}

func initSQLiteSchema(conn *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS foods (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		calories INTEGER NOT NULL CHECK (calories >= 0),
		protein INTEGER NOT NULL CHECK (protein >= 0),
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_log (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		food_name TEXT NOT NULL,
		calories INTEGER NOT NULL,
		protein INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS goals (
		user_id TEXT PRIMARY KEY,
		calorie_goal INTEGER NOT NULL,
		protein_goal INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_summary (
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		total_calories INTEGER NOT NULL,
		total_protein INTEGER NOT NULL,
		summary TEXT NOT NULL,
		calorie_goal INTEGER NOT NULL,
		protein_goal INTEGER NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_foods_user_name ON foods(user_id, name);
	CREATE INDEX IF NOT EXISTS idx_daily_log_user_date ON daily_log(user_id, date);
	`

	if _, err := conn.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to create schema")
	}
	return nil
}
