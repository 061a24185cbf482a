package repository

import (
	"context"

	"docshare/internal/model"
)

// DownloadRepository appends to the download ledger. The ledger is write-only
// from this interface; reads happen through StatsRepository rollups.
type DownloadRepository interface {
	// Insert appends one download event. documentID is recorded as-is, with
	// no existence check against the documents table.
	Insert(ctx context.Context, documentID, userID int64) (*model.DownloadEvent, error)
}

// StatsRepository computes read-only rollups over users, documents, and the
// download ledger.
type StatsRepository interface {
	// SystemStats returns system-wide totals.
	SystemStats(ctx context.Context) (*model.SystemStats, error)

	// TeacherTotals counts the documents owned by userID and the download
	// events against those documents.
	TeacherTotals(ctx context.Context, userID int64) (totalDocuments, totalDownloads int, err error)

	// RecentDocumentDownloads returns per-document download counts for the
	// most recently created documents owned by userID.
	RecentDocumentDownloads(ctx context.Context, userID int64, limit int) ([]model.DocumentDownloads, error)

	// StudentTotals counts the download events generated by userID.
	StudentTotals(ctx context.Context, userID int64) (totalDownloads int, err error)
}
