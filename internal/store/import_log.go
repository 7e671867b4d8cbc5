package store

import (
	"fmt"

	"github.com/google/uuid"

	"dentrack/internal/model"
)

// InsertImportLog 가져오기 이력 한 건 기록
func (s *Store) InsertImportLog(log *model.ImportLog) error {
	id := log.ID
	if id == "" {
		id = uuid.New().String()
	}
	_, err := s.db.Exec(`
		INSERT INTO import_logs (id, filename, kind, imported_rows, skipped_rows, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, log.Filename, log.Kind, log.ImportedRows, log.SkippedRows, log.DurationMs)
	if err != nil {
		return fmt.Errorf("failed to insert import log: %w", err)
	}
	return nil
}

// ListImportLogs 최근 가져오기 이력
func (s *Store) ListImportLogs(limit int) ([]*model.ImportLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, filename, kind, imported_rows, skipped_rows, duration_ms, created_at
		FROM import_logs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var logs []*model.ImportLog
	for rows.Next() {
		l := &model.ImportLog{}
		err := rows.Scan(&l.ID, &l.Filename, &l.Kind, &l.ImportedRows, &l.SkippedRows, &l.DurationMs, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
