package model

import "time"

// DownloadEvent is one row of the append-only download ledger. Rows are never
// updated or deleted, and the same user may generate unlimited rows against
// the same document. DocumentID is recorded as-is and may reference a document
// that no longer exists (or never did).
type DownloadEvent struct {
	ID           int64     `json:"id"`
	DocumentID   int64     `json:"document_id"`
	UserID       int64     `json:"user_id"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// SystemStats are the public system-wide rollups.
type SystemStats struct {
	TotalDocuments int `json:"totalDocuments"`
	TotalUsers     int `json:"totalUsers"`
	TotalTeachers  int `json:"totalTeachers"`
	TotalDownloads int `json:"totalDownloads"`
}

// TeacherStats aggregates one teacher's documents and the downloads they
// received, plus per-document counts for their 10 most recent documents.
type TeacherStats struct {
	TotalDocuments  int                 `json:"totalDocuments"`
	TotalDownloads  int                 `json:"totalDownloads"`
	RecentDocuments []DocumentDownloads `json:"recent_documents"`
}

// DocumentDownloads is a single document's download count, used in the
// per-teacher recent-documents rollup.
type DocumentDownloads struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	DownloadsCount int       `json:"downloads_count"`
}

// StudentStats counts the download events a single user generated.
type StudentStats struct {
	TotalDownloads int `json:"totalDownloads"`
}
