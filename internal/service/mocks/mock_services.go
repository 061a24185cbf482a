package mocks

import (
	"context"
	"io"

	"docshare/internal/auth"
	"docshare/internal/model"
	"docshare/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, search string, limit, offset int) (*service.DocumentListResult, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id int64) (*model.DocumentWithUploader, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentWithUploader), args.Error(1)
}

func (m *MockDocumentService) Create(ctx context.Context, identity *auth.Identity, in service.CreateDocumentInput) (*model.Document, error) {
	args := m.Called(ctx, identity, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, identity *auth.Identity, id int64, upd model.DocumentUpdate) error {
	args := m.Called(ctx, identity, id, upd)
	return args.Error(0)
}

func (m *MockDocumentService) Delete(ctx context.Context, identity *auth.Identity, id int64) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}

func (m *MockDocumentService) RecordDownload(ctx context.Context, identity *auth.Identity, documentID int64) (*model.DownloadEvent, error) {
	args := m.Called(ctx, identity, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DownloadEvent), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) System(ctx context.Context) (*model.SystemStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SystemStats), args.Error(1)
}

func (m *MockStatsService) Teacher(ctx context.Context, targetUserID int64) (*model.TeacherStats, error) {
	args := m.Called(ctx, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeacherStats), args.Error(1)
}

func (m *MockStatsService) Student(ctx context.Context, targetUserID int64) (*model.StudentStats, error) {
	args := m.Called(ctx, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudentStats), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*service.UploadedFile, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedFile), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, filename string) (io.ReadCloser, *service.UploadedFile, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*service.UploadedFile), args.Error(2)
}
