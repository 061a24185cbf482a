package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// DownloadPostgres is a PostgreSQL implementation of repository.DownloadRepository.
// The downloads table is append-only; this type never updates or deletes rows.
type DownloadPostgres struct {
	db *sql.DB
}

// NewDownloadPostgres creates a new DownloadPostgres repository.
func NewDownloadPostgres(db *sql.DB) *DownloadPostgres {
	return &DownloadPostgres{db: db}
}

var _ repository.DownloadRepository = (*DownloadPostgres)(nil)

// Insert appends one download event. documentID is stored as-is; there is no
// check against the documents table and no uniqueness constraint, so repeated
// downloads each produce a new row.
func (r *DownloadPostgres) Insert(ctx context.Context, documentID, userID int64) (*model.DownloadEvent, error) {
	const q = `
		INSERT INTO downloads (document_id, user_id)
		VALUES ($1, $2)
		RETURNING id, document_id, user_id, downloaded_at
	`
	row := r.db.QueryRowContext(ctx, q, documentID, userID)
	var ev model.DownloadEvent
	if err := row.Scan(&ev.ID, &ev.DocumentID, &ev.UserID, &ev.DownloadedAt); err != nil {
		return nil, err
	}
	return &ev, nil
}
