package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"docshare/internal/storage"
	storeMocks "docshare/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mStore *storeMocks.MockStorage) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			originalFilename: "notes.pdf",
			contentType:      "application/pdf",
			size:             8,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("%PDF-1.4")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".pdf")
				}), r, storage.PutObjectOptions{
					Size:        8,
					ContentType: "application/pdf",
					Metadata:    map[string]string{"original-filename": "notes.pdf"},
				}).Return(storage.ObjectInfo{Size: 8, ContentType: "application/pdf"}, nil)
				return r
			},
		},
		{
			name:             "extension case-insensitive",
			originalFilename: "NOTES.PDF",
			contentType:      "application/pdf",
			size:             8,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("%PDF-1.4")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasSuffix(key, ".pdf")
				}), r, mock.Anything).Return(storage.ObjectInfo{Size: 8}, nil)
				return r
			},
		},
		{
			name:             "nil reader",
			originalFilename: "notes.pdf",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "blocked extension",
			originalFilename: "payload.exe",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return strings.NewReader("MZ")
			},
			wantErr: ErrFileTypeBlocked,
		},
		{
			name:             "no extension",
			originalFilename: "README",
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				return strings.NewReader("hi")
			},
			wantErr: ErrFileTypeBlocked,
		},
		{
			name:             "storage error",
			originalFilename: "notes.pdf",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			r := tt.setupMocks(mStore)
			svc := NewFileService(mStore)

			got, err := svc.Upload(ctx, r, tt.originalFilename, tt.contentType, tt.size)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.originalFilename, got.OriginalName)
				assert.True(t, strings.HasPrefix(got.Path, "/api/uploads/"))
				assert.True(t, strings.HasSuffix(got.Filename, ".pdf"))
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestFileService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		rc := io.NopCloser(strings.NewReader("content"))
		mStore.On("Get", ctx, "uploads/abc.pdf").Return(rc, storage.ObjectInfo{
			Size:        7,
			ContentType: "application/pdf",
			Metadata:    map[string]string{"original-filename": "notes.pdf"},
		}, nil)
		svc := NewFileService(mStore)

		got, info, err := svc.Download(ctx, "abc.pdf")
		require.NoError(t, err)
		assert.Equal(t, "notes.pdf", info.OriginalName)
		assert.Equal(t, "abc.pdf", info.Filename)

		data, _ := io.ReadAll(got)
		assert.Equal(t, "content", string(data))
		mStore.AssertExpectations(t)
	})

	t.Run("canonical metadata key fallback", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		rc := io.NopCloser(strings.NewReader("x"))
		mStore.On("Get", ctx, "uploads/abc.pdf").Return(rc, storage.ObjectInfo{
			Metadata: map[string]string{"Original-Filename": "notes.pdf"},
		}, nil)
		svc := NewFileService(mStore)

		_, info, err := svc.Download(ctx, "abc.pdf")
		require.NoError(t, err)
		assert.Equal(t, "notes.pdf", info.OriginalName)
	})

	t.Run("missing metadata falls back to stored name", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		rc := io.NopCloser(strings.NewReader("x"))
		mStore.On("Get", ctx, "uploads/abc.pdf").Return(rc, storage.ObjectInfo{}, nil)
		svc := NewFileService(mStore)

		_, info, err := svc.Download(ctx, "abc.pdf")
		require.NoError(t, err)
		assert.Equal(t, "abc.pdf", info.OriginalName)
	})

	t.Run("path traversal stripped", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		rc := io.NopCloser(strings.NewReader("x"))
		mStore.On("Get", ctx, "uploads/secret.pdf").Return(rc, storage.ObjectInfo{}, nil)
		svc := NewFileService(mStore)

		_, info, err := svc.Download(ctx, "../../etc/secret.pdf")
		require.NoError(t, err)
		assert.Equal(t, "secret.pdf", info.Filename)
		mStore.AssertExpectations(t)
	})

	t.Run("object missing", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Get", ctx, "uploads/ghost.pdf").
			Return(nil, storage.ObjectInfo{}, errors.New("no such key"))
		svc := NewFileService(mStore)

		_, _, err := svc.Download(ctx, "ghost.pdf")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}
