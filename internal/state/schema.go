package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS downloads (
			locator TEXT PRIMARY KEY,
			local_path TEXT NOT NULL,
			size INTEGER NOT NULL DEFAULT 0,
			downloaded_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_downloads_downloaded_at ON downloads(downloaded_at);
	`)
	if err != nil {
		return err
	}

	var version int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return err
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(`INSERT OR REPLACE INTO schema_version (version) VALUES (?)`, currentSchemaVersion); err != nil {
			return err
		}
	}
	return nil
}
