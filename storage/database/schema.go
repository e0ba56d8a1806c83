package database

import (
	"strings"

	"github.com/pkg/errors"
)

// TableNames lists the application tables in creation order.
var TableNames = []string{"users", "attendance", "marks", "assignments", "projects", "notifications", "events"}

// {{pk}} is replaced by the dialect's auto-increment primary key.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {{pk}},
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL DEFAULT 'student'
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id {{pk}},
		user_id INTEGER NOT NULL REFERENCES users (id),
		date TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS marks (
		id {{pk}},
		user_id INTEGER NOT NULL REFERENCES users (id),
		semester INTEGER NOT NULL,
		subject TEXT NOT NULL,
		marks INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		id {{pk}},
		user_id INTEGER NOT NULL REFERENCES users (id),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		deadline TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending'
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id {{pk}},
		user_id INTEGER NOT NULL REFERENCES users (id),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		deadline TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending'
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id {{pk}},
		user_id INTEGER NOT NULL REFERENCES users (id),
		message TEXT NOT NULL,
		date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id {{pk}},
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		date TEXT NOT NULL
	)`,
}

var primaryKeys = map[string]string{
	"sqlite":   "INTEGER PRIMARY KEY AUTOINCREMENT",
	"postgres": "SERIAL PRIMARY KEY",
}

func schemaFor(driver string) ([]string, error) {
	pk, ok := primaryKeys[driver]
	if !ok {
		return nil, errors.Errorf("unsupported driver %q", driver)
	}
	stmts := make([]string, 0, len(schema))
	for _, stmt := range schema {
		stmts = append(stmts, strings.ReplaceAll(stmt, "{{pk}}", pk))
	}
	return stmts, nil
}
