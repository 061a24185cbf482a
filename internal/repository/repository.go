package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory
// and must use parameterized queries only.

import "errors"

// ErrDuplicate is returned by Create operations when a uniqueness constraint
// rejects the row (duplicate email, duplicate title per uploader). Absent rows
// are reported with sql.ErrNoRows, matching database/sql conventions.
var ErrDuplicate = errors.New("duplicate record")
