package model

import "time"

// Document represents a shared document record in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// FilePath is an opaque reference into object storage; the document layer never
// inspects file bytes.
type Document struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	FilePath    string    `json:"file_path"`
	FileType    *string   `json:"file_type"`
	UploadedBy  *int64    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentWithUploader is a Document joined with its uploader's public fields.
// Uploader fields are nil when the uploading account has been deleted.
type DocumentWithUploader struct {
	Document
	UploaderName  *string `json:"uploader_name"`
	UploaderEmail *string `json:"uploader_email,omitempty"`
	UploaderRole  *Role   `json:"uploader_role"`
}

// DocumentUpdate carries the optional fields an owner may change in place.
// Nil fields are left untouched; anything outside this allow-list is ignored
// by the HTTP layer before it ever reaches here.
type DocumentUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	FilePath    *string `json:"file_path"`
	FileType    *string `json:"file_type"`
}

// Empty reports whether the update carries no recognized field.
func (u DocumentUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.FilePath == nil && u.FileType == nil
}
