package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// StatsPostgres is a PostgreSQL implementation of repository.StatsRepository.
// All queries are read-only rollups; nothing here mutates state.
type StatsPostgres struct {
	db *sql.DB
}

// NewStatsPostgres creates a new StatsPostgres repository.
func NewStatsPostgres(db *sql.DB) *StatsPostgres {
	return &StatsPostgres{db: db}
}

var _ repository.StatsRepository = (*StatsPostgres)(nil)

// SystemStats returns system-wide totals in a single round trip.
func (r *StatsPostgres) SystemStats(ctx context.Context) (*model.SystemStats, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM documents),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'teacher'),
			(SELECT COUNT(*) FROM downloads)
	`
	var s model.SystemStats
	if err := r.db.QueryRowContext(ctx, q).Scan(
		&s.TotalDocuments,
		&s.TotalUsers,
		&s.TotalTeachers,
		&s.TotalDownloads,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// TeacherTotals counts the documents owned by userID and the ledger rows
// against those documents.
func (r *StatsPostgres) TeacherTotals(ctx context.Context, userID int64) (int, int, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM documents WHERE uploaded_by = $1),
			(SELECT COUNT(*) FROM downloads dl
			   JOIN documents d ON dl.document_id = d.id
			  WHERE d.uploaded_by = $1)
	`
	var docs, downloads int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&docs, &downloads); err != nil {
		return 0, 0, err
	}
	return docs, downloads, nil
}

// RecentDocumentDownloads returns per-document download counts for the newest
// documents owned by userID.
func (r *StatsPostgres) RecentDocumentDownloads(ctx context.Context, userID int64, limit int) ([]model.DocumentDownloads, error) {
	const q = `
		SELECT d.id, d.title, d.created_at,
		       (SELECT COUNT(*) FROM downloads WHERE document_id = d.id) AS downloads_count
		FROM documents d
		WHERE d.uploaded_by = $1
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentDownloads, 0, limit)
	for rows.Next() {
		var dd model.DocumentDownloads
		if err := rows.Scan(&dd.ID, &dd.Title, &dd.CreatedAt, &dd.DownloadsCount); err != nil {
			return nil, err
		}
		items = append(items, dd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// StudentTotals counts the ledger rows generated by userID, including rows
// whose document has since been deleted.
func (r *StatsPostgres) StudentTotals(ctx context.Context, userID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM downloads WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
