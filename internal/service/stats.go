package service

import (
	"context"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// recentDocumentsLimit bounds the per-document rollup in teacher stats.
const recentDocumentsLimit = 10

// StatsService computes read-only statistical rollups. System is public;
// Teacher and Student require authentication, but any authenticated caller
// may query any target user. That missing self-check matches the system this
// one replaces and is preserved deliberately.
type StatsService interface {
	// System returns system-wide totals.
	System(ctx context.Context) (*model.SystemStats, error)

	// Teacher returns document/download totals for the target user plus
	// per-document counts for their 10 most recent documents.
	Teacher(ctx context.Context, targetUserID int64) (*model.TeacherStats, error)

	// Student returns the download-event count generated by the target user.
	Student(ctx context.Context, targetUserID int64) (*model.StudentStats, error)
}

type statsService struct {
	stats repository.StatsRepository
}

// NewStatsService constructs a new StatsService.
func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) System(ctx context.Context) (*model.SystemStats, error) {
	return s.stats.SystemStats(ctx)
}

func (s *statsService) Teacher(ctx context.Context, targetUserID int64) (*model.TeacherStats, error) {
	docs, downloads, err := s.stats.TeacherTotals(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	recent, err := s.stats.RecentDocumentDownloads(ctx, targetUserID, recentDocumentsLimit)
	if err != nil {
		return nil, err
	}
	return &model.TeacherStats{
		TotalDocuments:  docs,
		TotalDownloads:  downloads,
		RecentDocuments: recent,
	}, nil
}

func (s *statsService) Student(ctx context.Context, targetUserID int64) (*model.StudentStats, error) {
	total, err := s.stats.StudentTotals(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return &model.StudentStats{TotalDownloads: total}, nil
}
