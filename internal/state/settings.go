package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/practicehard/internal/db"
)

// Settings are the user adjustments restored at startup.
type Settings struct {
	Volume         int
	Speed          int
	SkipIntervalMs int
	LastFolder     string
}

func getSettings(db *sql.DB) (*Settings, error) {
	row := db.QueryRow(`
		SELECT volume, speed, skip_interval_ms, last_folder
		FROM settings WHERE id = 1
	`)

	var s Settings
	var lastFolder sql.NullString
	err := row.Scan(&s.Volume, &s.Speed, &s.SkipIntervalMs, &lastFolder)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved settings is valid on first run
	}
	if err != nil {
		return nil, err
	}
	s.LastFolder = dbutil.NullStringValue(lastFolder)

	return &s, nil
}

func saveSettings(db *sql.DB, s Settings) error {
	_, err := db.Exec(`
		INSERT INTO settings (id, volume, speed, skip_interval_ms, last_folder)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			speed = excluded.speed,
			skip_interval_ms = excluded.skip_interval_ms,
			last_folder = excluded.last_folder
	`, s.Volume, s.Speed, s.SkipIntervalMs, s.LastFolder)
	return err
}
