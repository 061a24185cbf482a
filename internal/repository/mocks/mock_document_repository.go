package mocks

import (
	"context"

	"docshare/internal/model"
	"docshare/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id int64) (*model.DocumentWithUploader, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentWithUploader), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, q repository.DocumentQuery) ([]model.DocumentWithUploader, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentWithUploader), args.Error(1)
}

func (m *MockDocumentRepository) ExistsByOwnerAndTitle(ctx context.Context, ownerID int64, title string) (bool, error) {
	args := m.Called(ctx, ownerID, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, id int64, upd model.DocumentUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
