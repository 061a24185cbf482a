package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
// A duplicate (uploaded_by, title) pair surfaces as repository.ErrDuplicate.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (title, description, file_path, file_type, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, file_path, file_type, uploaded_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.Title,
		doc.Description,
		doc.FilePath,
		doc.FileType,
		doc.UploadedBy,
	)
	var out model.Document
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Description,
		&out.FilePath,
		&out.FileType,
		&out.UploadedBy,
		&out.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert document: %w", repository.ErrDuplicate)
		}
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single document with uploader email/name/role joined.
// The LEFT JOIN keeps documents visible after their uploader is deleted.
func (r *DocumentPostgres) FindByID(ctx context.Context, id int64) (*model.DocumentWithUploader, error) {
	const q = `
		SELECT d.id, d.title, d.description, d.file_path, d.file_type, d.uploaded_by, d.created_at,
		       u.full_name, u.email, u.role
		FROM documents d
		LEFT JOIN users u ON d.uploaded_by = u.id
		WHERE d.id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var d model.DocumentWithUploader
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Description,
		&d.FilePath,
		&d.FileType,
		&d.UploadedBy,
		&d.CreatedAt,
		&d.UploaderName,
		&d.UploaderEmail,
		&d.UploaderRole,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns documents joined with uploader name/role, newest first, using
// LIMIT/OFFSET pagination. The search term matches title or description as a
// case-insensitive substring.
func (r *DocumentPostgres) List(ctx context.Context, pq repository.DocumentQuery) ([]model.DocumentWithUploader, error) {
	q := `
		SELECT d.id, d.title, d.description, d.file_path, d.file_type, d.uploaded_by, d.created_at,
		       u.full_name, u.role
		FROM documents d
		LEFT JOIN users u ON d.uploaded_by = u.id
	`
	args := make([]any, 0, 3)
	if pq.Search != "" {
		q += ` WHERE (d.title ILIKE $1 OR d.description ILIKE $1)`
		args = append(args, "%"+pq.Search+"%")
	}
	q += fmt.Sprintf(" ORDER BY d.created_at DESC, d.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentWithUploader, 0)
	for rows.Next() {
		var d model.DocumentWithUploader
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Description,
			&d.FilePath,
			&d.FileType,
			&d.UploadedBy,
			&d.CreatedAt,
			&d.UploaderName,
			&d.UploaderRole,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsByOwnerAndTitle reports whether the owner already has a document with
// exactly this title. The comparison is case-sensitive.
func (r *DocumentPostgres) ExistsByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM documents WHERE uploaded_by = $1 AND title = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, ownerID, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update applies the non-nil fields of upd in place. Column names come from a
// fixed allow-list, never from caller input.
func (r *DocumentPostgres) Update(ctx context.Context, id int64, upd model.DocumentUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.FilePath != nil {
		add("file_path", *upd.FilePath)
	}
	if upd.FileType != nil {
		add("file_type", *upd.FileType)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE documents SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update document: %w", repository.ErrDuplicate)
		}
		return err
	}
	return nil
}

// Delete removes a document by id. Existence is checked by the service before
// calling; rows affected are ignored here.
func (r *DocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
