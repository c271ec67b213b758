package db

import (
	"log"
)

// createTables creates the archive tables if they don't exist.
func createTables() {
	// One row per flush cycle that produced data.
	createFlushesTableSQL := `
	CREATE TABLE IF NOT EXISTS flushes (
		id TEXT PRIMARY KEY,
		round INTEGER NOT NULL,
		row_count INTEGER NOT NULL,
		snapshot_file TEXT,
		created_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createFlushesTableSQL)
	if err != nil {
		log.Fatalf("Failed to create flushes table: %v", err)
	}

	// One row per exported submission, keyed to its flush cycle.
	createSubmissionsTableSQL := `
	CREATE TABLE IF NOT EXISTS submissions (
		flush_id TEXT NOT NULL,
		team TEXT NOT NULL,
		plot_id INTEGER NOT NULL,
		round INTEGER NOT NULL,
		lat TEXT NOT NULL,
		lng TEXT NOT NULL,
		user_id TEXT NOT NULL,
		trial INTEGER NOT NULL DEFAULT 0,
		road INTEGER NOT NULL DEFAULT 0,
		field INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (flush_id) REFERENCES flushes(id)
	);`

	_, err = DB.Exec(createSubmissionsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create submissions table: %v", err)
	}
}
