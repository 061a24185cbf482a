package mocks

import (
	"context"

	"docshare/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDownloadRepository struct {
	mock.Mock
}

func (m *MockDownloadRepository) Insert(ctx context.Context, documentID, userID int64) (*model.DownloadEvent, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DownloadEvent), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) SystemStats(ctx context.Context) (*model.SystemStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SystemStats), args.Error(1)
}

func (m *MockStatsRepository) TeacherTotals(ctx context.Context, userID int64) (int, int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockStatsRepository) RecentDocumentDownloads(ctx context.Context, userID int64, limit int) ([]model.DocumentDownloads, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentDownloads), args.Error(1)
}

func (m *MockStatsRepository) StudentTotals(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
