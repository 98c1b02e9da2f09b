package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/practicehard/internal/db"
)

// MaxRecent is how many recently opened files are kept.
const MaxRecent = 10

// RecentFile is an entry of the open-file history.
type RecentFile struct {
	Path     string
	TrackKey string
	OpenedAt time.Time
}

func addRecent(db *sql.DB, path, trackKey string, now time.Time) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO recent_files (path, track_key, opened_at)
			VALUES (?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				track_key = excluded.track_key,
				opened_at = excluded.opened_at
		`, path, trackKey, now.UnixNano())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM recent_files WHERE path NOT IN (
				SELECT path FROM recent_files ORDER BY opened_at DESC LIMIT ?
			)
		`, MaxRecent)
		return err
	})
}

func listRecent(db *sql.DB) ([]RecentFile, error) {
	rows, err := db.Query(`
		SELECT path, track_key, opened_at
		FROM recent_files ORDER BY opened_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []RecentFile
	for rows.Next() {
		var f RecentFile
		var openedAt int64
		if err := rows.Scan(&f.Path, &f.TrackKey, &openedAt); err != nil {
			return nil, err
		}
		f.OpenedAt = time.Unix(0, openedAt)
		files = append(files, f)
	}
	return files, rows.Err()
}
