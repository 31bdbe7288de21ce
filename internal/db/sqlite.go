// Package db owns the SQLite connection and the transaction discipline every
// mutating operation runs under.
package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the SQLite store at path. Write transactions take the
// reserved lock at BEGIN (_txlock=immediate) so two writers never deadlock
// after both have read; busy_timeout bounds the lock wait before SQLITE_BUSY
// surfaces to the retry layer.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_txlock=immediate&_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL",
		path,
	)

	sdb, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	return sdb, nil
}
