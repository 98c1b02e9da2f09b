// Package db has small helpers over database/sql shared by the stores.
package db

import (
	"database/sql"
	"errors"
)

// WithTx runs fn in a transaction, committing only when fn succeeds. A
// failed rollback is reported alongside fn's error.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// NullStringValue returns n's string, or "" for NULL.
func NullStringValue(n sql.NullString) string {
	if n.Valid {
		return n.String
	}
	return ""
}
