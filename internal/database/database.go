package database

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool. The configured path may already
// be a URI DSN carrying its own query parameters, so the foreign-key pragma
// joins with whichever separator keeps the DSN well-formed.
func New(dataSourceName string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dataSourceName, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", dataSourceName+sep+"_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
//
// The UNIQUE constraint on users.email is load-bearing: it is the
// serialization point that keeps two concurrent registrations of the same
// address from both succeeding.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		profile_pic TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL UNIQUE,
		subtitle TEXT NOT NULL,
		date TEXT NOT NULL,
		body TEXT NOT NULL,
		img_url TEXT NOT NULL,
		author_id INTEGER NOT NULL REFERENCES users(id),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		author_id INTEGER NOT NULL REFERENCES users(id),
		text TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
