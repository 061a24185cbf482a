package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsPostgres_SystemStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"documents", "users", "teachers", "downloads"}).
			AddRow(12, 30, 4, 250)

		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		stats, err := repo.SystemStats(ctx)

		assert.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 12, stats.TotalDocuments)
		assert.Equal(t, 30, stats.TotalUsers)
		assert.Equal(t, 4, stats.TotalTeachers)
		assert.Equal(t, 250, stats.TotalDownloads)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

		stats, err := repo.SystemStats(ctx)

		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}

func TestStatsPostgres_TeacherTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"documents", "downloads"}).AddRow(5, 42)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	docs, downloads, err := repo.TeacherTotals(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 5, docs)
	assert.Equal(t, 42, downloads)
}

func TestStatsPostgres_RecentDocumentDownloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "title", "created_at", "downloads_count"}).
		AddRow(3, "Newest", time.Now(), 9).
		AddRow(2, "Older", time.Now().Add(-time.Hour), 1)

	mock.ExpectQuery("SELECT (.+) FROM documents d WHERE d.uploaded_by = (.+) ORDER BY d.created_at DESC").
		WithArgs(int64(1), 10).
		WillReturnRows(rows)

	items, err := repo.RecentDocumentDownloads(ctx, 1, 10)

	assert.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Newest", items[0].Title)
	assert.Equal(t, 9, items[0].DownloadsCount)
}

func TestStatsPostgres_StudentTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStatsPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM downloads WHERE user_id = ?").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.StudentTotals(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
}
