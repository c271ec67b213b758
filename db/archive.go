package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
)

// ArchiveFlush records an exported batch in the local archive and returns
// the flush cycle id. Everything is written in one transaction so a partial
// cycle never appears in the archive.
func ArchiveFlush(round int, snapshotFile string, batches map[string][]model.Submission) (string, error) {
	tx, err := DB.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback() // Rollback on error

	flushID := uuid.New().String()

	rowCount := 0
	for _, subs := range batches {
		rowCount += len(subs)
	}

	_, err = tx.Exec(
		"INSERT INTO flushes(id, round, row_count, snapshot_file, created_at) VALUES(?, ?, ?, ?, ?)",
		flushID, round, rowCount, snapshotFile, time.Now().Unix(),
	)
	if err != nil {
		return "", err
	}

	stmt, err := tx.Prepare(`INSERT INTO submissions(
		flush_id, team, plot_id, round, lat, lng, user_id, trial, road, field
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for team, subs := range batches {
		for _, sub := range subs {
			_, err = stmt.Exec(
				flushID, team, sub.ID, round, sub.Lat, sub.Lng, sub.UserID,
				boolToInt(sub.Trial), boolToInt(sub.Road), boolToInt(sub.Field),
			)
			if err != nil {
				return "", err
			}
		}
	}

	return flushID, tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
