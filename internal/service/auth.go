package service

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"strings"

	"docshare/internal/auth"
	"docshare/internal/model"
	"docshare/internal/repository"
)

// RegisterInput carries a registration request. Role is restricted to teacher
// or student; admin accounts cannot be self-registered.
type RegisterInput struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	FullName string     `json:"full_name"`
	Role     model.Role `json:"role"`
}

// AuthResult pairs a user with a freshly issued token.
type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// AuthService defines the use cases for account registration and login.
//
// Passwords are stored and compared verbatim, preserving the contract of the
// system this one replaces. Do not point production traffic at it without
// revisiting that.
type AuthService interface {
	// Register creates an account and returns it with a signed token.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	// Login verifies an email/password pair and returns the account with a
	// signed token.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Me returns the account behind an authenticated identity.
	Me(ctx context.Context, userID int64) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
	codec *auth.TokenCodec
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, codec *auth.TokenCodec) AuthService {
	return &authService{users: users, codec: codec}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	fields := map[string]string{}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(in.Password) < 6 {
		fields["password"] = "must be at least 6 characters"
	}
	if strings.TrimSpace(in.FullName) == "" {
		fields["full_name"] = "must not be empty"
	}
	// Admin is a stored role, never a registerable one.
	if in.Role != model.RoleTeacher && in.Role != model.RoleStudent {
		fields["role"] = "must be teacher or student"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Pre-check keeps the friendly duplicate response; the unique index on
	// users.email still catches concurrent registrations.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		Email:    email,
		Password: in.Password,
		FullName: strings.TrimSpace(in.FullName),
		Role:     in.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Verbatim comparison against the stored password.
	if password != user.Password {
		return nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
