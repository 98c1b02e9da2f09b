package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE recent (path TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM recent`).Scan(&n))
	return n
}

func TestWithTx_Commits(t *testing.T) {
	db := openDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO recent (path) VALUES (?)`, "/music/a.mp3")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openDB(t)
	boom := errors.New("boom")

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO recent (path) VALUES (?)`, "/music/a.mp3"); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Zero(t, count(t, db))
}

func TestWithTx_StatementErrorRollsBack(t *testing.T) {
	db := openDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO recent (path) VALUES (?)`, "/music/a.mp3"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO recent (path) VALUES (?)`, "/music/a.mp3")
		return err
	})

	require.Error(t, err)
	assert.Zero(t, count(t, db))
}

func TestNullStringValue(t *testing.T) {
	assert.Equal(t, "/music", NullStringValue(sql.NullString{String: "/music", Valid: true}))
	assert.Empty(t, NullStringValue(sql.NullString{String: "stale"}))
}
