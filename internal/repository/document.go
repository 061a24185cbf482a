package repository

import (
	"context"

	"docshare/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — ownership and role checks live in the service layer.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored document
	// including the generated id and created_at.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document joined with its uploader's public fields,
	// or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.DocumentWithUploader, error)

	// List returns documents ordered by creation time descending, joined with
	// uploader name/role. The search term, when present, matches title or
	// description case-insensitively as a substring.
	List(ctx context.Context, q DocumentQuery) ([]model.DocumentWithUploader, error)

	// ExistsByOwnerAndTitle reports whether the owner already has a document
	// with exactly this title.
	ExistsByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (bool, error)

	// Update applies the non-nil fields of upd to the document in place.
	Update(ctx context.Context, id int64, upd model.DocumentUpdate) error

	// Delete removes a document by id. Ledger rows referencing it are left
	// untouched.
	Delete(ctx context.Context, id int64) error
}

// DocumentQuery holds list filtering and limit/offset pagination parameters.
// No upper bound is applied to Limit.
type DocumentQuery struct {
	Search string
	Limit  int
	Offset int
}
