package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"docshare/internal/storage"
)

var (
	ErrReaderNil       = errors.New("reader is nil")
	ErrFileTypeBlocked = errors.New("file type not allowed")
	ErrFileNotFound    = errors.New("file not found")
)

// allowedExtensions mirrors the upload filter of the system this one
// replaces: documents, archives, spreadsheets, video, and audio.
var allowedExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
	".txt": true, ".zip": true, ".rar": true, ".xls": true, ".xlsx": true,
	".csv": true, ".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".mkv": true, ".mp3": true, ".wav": true, ".aac": true,
	".flac": true, ".ogg": true, ".wma": true,
}

const uploadPrefix = "uploads"

// UploadedFile describes a stored file, echoing back the original name and
// the path clients later submit as a document's file_path.
type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
}

// FileService moves file bytes in and out of object storage. Nothing here
// reads the bytes; documents reference files only through opaque paths.
type FileService interface {
	// Upload stores the content under a generated name and returns the
	// stored file's metadata.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*UploadedFile, error)

	// Download streams a stored file by its generated name, returning the
	// original filename for the attachment header.
	Download(ctx context.Context, filename string) (io.ReadCloser, *UploadedFile, error)
}

type fileService struct {
	store storage.Storage
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.Storage) FileService {
	return &fileService{store: store}
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*UploadedFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExtensions[ext] {
		return nil, ErrFileTypeBlocked
	}

	genName := uuid.New().String() + ext
	key := uploadPrefix + "/" + genName

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	return &UploadedFile{
		Filename:     genName,
		OriginalName: originalFilename,
		Path:         "/api/uploads/" + genName,
		Size:         info.Size,
		MimeType:     contentType,
	}, nil
}

func (s *fileService) Download(ctx context.Context, filename string) (io.ReadCloser, *UploadedFile, error) {
	// Strip any path components so callers can't escape the upload prefix.
	name := filepath.Base(filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, nil, ErrFileNotFound
	}

	rc, info, err := s.store.Get(ctx, uploadPrefix+"/"+name)
	if err != nil {
		return nil, nil, ErrFileNotFound
	}

	original := info.Metadata["original-filename"]
	if original == "" {
		// MinIO normalizes user metadata keys to canonical header casing.
		original = info.Metadata["Original-Filename"]
	}
	if original == "" {
		original = name
	}

	return rc, &UploadedFile{
		Filename:     name,
		OriginalName: original,
		Path:         "/api/uploads/" + name,
		Size:         info.Size,
		MimeType:     info.ContentType,
	}, nil
}
