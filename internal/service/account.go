package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yourorg/accountsvc/internal/auth"
	"github.com/yourorg/accountsvc/internal/models"
	"github.com/yourorg/accountsvc/internal/store"
)

// MinPasswordLength is checked before anything touches the store.
const MinPasswordLength = 8

var (
	// ErrPasswordTooShort rejects registrations below MinPasswordLength.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrUserExists reports a registration against a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound reports a login against an unknown username.
	ErrUserNotFound = errors.New("user not found")
	// ErrIncorrectPassword reports a failed hash comparison on login.
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserStore is the persistence boundary the service depends on.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameProjected(ctx context.Context, username string) (*models.PublicUser, error)
	Save(ctx context.Context, u *models.User) (*models.User, error)
}

// AccountService orchestrates registration, login and profile lookup over
// the user store, the password hasher and the token issuer.
type AccountService struct {
	store  UserStore
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
}

func NewAccountService(st UserStore, hasher *auth.Hasher, tokens *auth.TokenIssuer) *AccountService {
	return &AccountService{store: st, hasher: hasher, tokens: tokens}
}

// Register creates a new user and returns its public profile. The plaintext
// password is hashed before the record is constructed, so it never reaches
// the store. Duplicate usernames return ErrUserExists whether caught by the
// pre-read or by the unique index.
func (s *AccountService) Register(ctx context.Context, req *models.RegisterRequest) (*models.PublicUser, error) {
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	username := strings.TrimSpace(req.Username)
	_, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Gender:       req.Gender,
		DateOfBirth:  dob,
		Country:      strings.TrimSpace(req.Country),
	}
	created, err := s.store.Save(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return created.Public(), nil
}

// Login verifies the credentials and mints a token binding the user's
// identity. Read plus compute only; no durable side effects.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrIncorrectPassword
	}

	token, _, err := s.tokens.Issue(user.ID, user.Username, user.FullName)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// SearchUser validates the bearer token, then looks up the requested
// profile with the hash projected out. A nil profile with a nil error means
// the token was good but the username is unknown.
func (s *AccountService) SearchUser(ctx context.Context, bearerToken, username string) (*auth.Claims, *models.PublicUser, error) {
	claims, err := s.tokens.Verify(bearerToken)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.store.FindByUsernameProjected(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return claims, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("looking up profile: %w", err)
	}
	return claims, profile, nil
}

// parseDateOfBirth accepts YYYY-MM-DD, or a full RFC 3339 timestamp for
// clients that serialize dates that way.
func parseDateOfBirth(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, &store.ValidationError{Field: "dateOfBirth", Message: "expected YYYY-MM-DD"}
}
