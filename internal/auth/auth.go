package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roach88/ward/internal/model"
	"github.com/roach88/ward/internal/store"
)

// Bootstrap credentials seeded into an empty users table.
const (
	BootstrapUsername = "root"
	BootstrapPassword = "root"
)

// Users is the slice of the store the service needs.
// *store.Store satisfies it.
type Users interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// Session is proof of a successful login.
// It lives only in the Navigator's memory and never expires.
type Session struct {
	Token    string
	UserID   string
	Username string
	IssuedAt time.Time
}

// Service verifies and registers credentials.
type Service struct {
	users  Users
	ids    TokenGenerator
	tokens TokenGenerator
	cost   int
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCost sets the bcrypt cost used when hashing new passwords.
// Tests use bcrypt.MinCost to stay fast.
func WithCost(cost int) ServiceOption {
	return func(s *Service) {
		s.cost = cost
	}
}

// WithIDGenerator sets the generator for new user ids.
func WithIDGenerator(g TokenGenerator) ServiceOption {
	return func(s *Service) {
		s.ids = g
	}
}

// WithTokenGenerator sets the generator for session tokens.
func WithTokenGenerator(g TokenGenerator) ServiceOption {
	return func(s *Service) {
		s.tokens = g
	}
}

// WithNow overrides the wall clock used for Session.IssuedAt.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service backed by users.
//
// Defaults: bcrypt.DefaultCost, UUIDv7 ids and tokens, time.Now.
func NewService(users Users, opts ...ServiceOption) *Service {
	s := &Service{
		users:  users,
		ids:    UUIDv7Generator{},
		tokens: UUIDv7Generator{},
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks username and password against the stored hash.
//
// Returns ErrNotFound when no such user exists and ErrMismatch when the
// password is wrong. The comparison happens inside bcrypt, which is
// constant-time with respect to the hash.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	u, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		slog.Info("login rejected", "username", username, "reason", KindNotFound)
		return Session{}, &AuthError{Kind: KindNotFound, Username: username}
	}
	if err != nil {
		return Session{}, fmt.Errorf("login %q: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Info("login rejected", "username", username, "reason", KindMismatch)
			return Session{}, &AuthError{Kind: KindMismatch, Username: username}
		}
		return Session{}, fmt.Errorf("login %q: compare hash: %w", username, err)
	}

	slog.Info("login", "username", username, "user_id", u.ID)
	return Session{
		Token:    s.tokens.Generate(),
		UserID:   u.ID,
		Username: u.Username,
		IssuedAt: s.now(),
	}, nil
}

// Register creates a new user with a bcrypt-hashed password.
//
// Duplicate usernames are rejected with ErrDuplicate before any hashing
// work is done. A unique-constraint failure from the store (the row was
// inserted between the check and the write) maps to the same error.
func (s *Service) Register(ctx context.Context, username, password string) (model.User, error) {
	username = strings.TrimSpace(username)

	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return model.User{}, &AuthError{Kind: KindDuplicate, Username: username}
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.User{}, fmt.Errorf("register %q: %w", username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("register %q: hash password: %w", username, err)
	}

	u := model.User{
		ID:           s.ids.Generate(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if store.IsConstraint(err) {
			return model.User{}, &AuthError{Kind: KindDuplicate, Username: username}
		}
		return model.User{}, fmt.Errorf("register %q: %w", username, err)
	}

	slog.Info("registered user", "username", username, "user_id", u.ID)
	return u, nil
}

// EnsureBootstrap seeds the root/root account when no users exist yet.
// Returns true if the account was created.
func (s *Service) EnsureBootstrap(ctx context.Context) (bool, error) {
	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("bootstrap: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.Register(ctx, BootstrapUsername, BootstrapPassword); err != nil {
		return false, fmt.Errorf("bootstrap: %w", err)
	}
	return true, nil
}
