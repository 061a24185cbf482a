package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"docshare/internal/auth"
	"docshare/internal/model"
	"docshare/internal/repository"
)

// DefaultListLimit applies when the caller omits or zeroes the page size.
// No upper bound is enforced.
const DefaultListLimit = 20

// CreateDocumentInput carries the fields for a new document. FilePath is the
// opaque storage reference produced by a prior upload.
type CreateDocumentInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	FilePath    string  `json:"file_path"`
	FileType    *string `json:"file_type"`
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Documents []model.DocumentWithUploader `json:"documents"`
	Limit     int                          `json:"limit"`
	Offset    int                          `json:"offset"`
}

// DocumentService defines the use cases for handling documents and the
// download ledger. Create/Update/Delete require a teacher identity, and
// Update/Delete additionally require ownership; listing and reading are
// public.
type DocumentService interface {
	// List returns documents newest-first, optionally filtered by a
	// case-insensitive substring match against title or description.
	List(ctx context.Context, search string, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document with uploader fields joined.
	Get(ctx context.Context, id int64) (*model.DocumentWithUploader, error)

	// Create persists a new document owned by the identity.
	Create(ctx context.Context, identity *auth.Identity, in CreateDocumentInput) (*model.Document, error)

	// Update applies the non-nil fields of upd to the identity's own document.
	Update(ctx context.Context, identity *auth.Identity, id int64, upd model.DocumentUpdate) error

	// Delete removes the identity's own document. Ledger rows referencing it
	// remain.
	Delete(ctx context.Context, identity *auth.Identity, id int64) error

	// RecordDownload appends a ledger row for the identity against documentID.
	// The document is not checked for existence and repeat downloads are not
	// deduplicated.
	RecordDownload(ctx context.Context, identity *auth.Identity, documentID int64) (*model.DownloadEvent, error)
}

type documentService struct {
	docs      repository.DocumentRepository
	downloads repository.DownloadRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(docs repository.DocumentRepository, downloads repository.DownloadRepository) DocumentService {
	return &documentService{docs: docs, downloads: downloads}
}

func (s *documentService) List(ctx context.Context, search string, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.docs.List(ctx, repository.DocumentQuery{Search: search, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Documents: items, Limit: limit, Offset: offset}, nil
}

func (s *documentService) Get(ctx context.Context, id int64) (*model.DocumentWithUploader, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Create(ctx context.Context, identity *auth.Identity, in CreateDocumentInput) (*model.Document, error) {
	if identity.Role != model.RoleTeacher {
		return nil, ErrTeacherOnly
	}

	fields := map[string]string{}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		fields["title"] = "must not be empty"
	}
	if in.FilePath == "" {
		fields["file_path"] = "must not be empty"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// The exact-match pre-check produces the conflict response; the unique
	// index on (uploaded_by, title) closes the window between check and insert.
	exists, err := s.docs.ExistsByOwnerAndTitle(ctx, identity.ID, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTitle
	}

	ownerID := identity.ID
	doc, err := s.docs.Create(ctx, &model.Document{
		Title:       title,
		Description: in.Description,
		FilePath:    in.FilePath,
		FileType:    in.FileType,
		UploadedBy:  &ownerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, identity *auth.Identity, id int64, upd model.DocumentUpdate) error {
	if err := s.authorizeOwner(ctx, identity, id); err != nil {
		return err
	}

	if upd.Empty() {
		return ErrNoFields
	}

	if err := s.docs.Update(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateTitle
		}
		return err
	}
	return nil
}

func (s *documentService) Delete(ctx context.Context, identity *auth.Identity, id int64) error {
	if err := s.authorizeOwner(ctx, identity, id); err != nil {
		return err
	}
	return s.docs.Delete(ctx, id)
}

// authorizeOwner runs the shared write-access gate: teacher role first, then
// existence, then ownership. Order matters for the observable status codes.
func (s *documentService) authorizeOwner(ctx context.Context, identity *auth.Identity, id int64) error {
	if identity.Role != model.RoleTeacher {
		return ErrTeacherOnly
	}

	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if doc.UploadedBy == nil || *doc.UploadedBy != identity.ID {
		return ErrNotOwner
	}
	return nil
}

func (s *documentService) RecordDownload(ctx context.Context, identity *auth.Identity, documentID int64) (*model.DownloadEvent, error) {
	// documentID is recorded as-is; downloads against deleted or nonexistent
	// documents still produce ledger rows.
	return s.downloads.Insert(ctx, documentID, identity.ID)
}
