// Package account provides a local stand-in for sign-in. Credentials are
// only checked for presence; no password is stored or verified.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials is returned when email or password is empty.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotSignedIn is returned by operations that need a current user.
	ErrNotSignedIn = errors.New("not signed in")
)

// DefaultDelay simulates the round trip of a remote sign-in.
const DefaultDelay = time.Second

// storageKey is the settings key holding the current user.
const storageKey = "account.current"

// User is the signed-in user.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	SignedInAt  time.Time `json:"signedInAt"`
}

// Name returns the display name, falling back to the email.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// Settings is the key-value persistence the service needs.
type Settings interface {
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// Service signs users in and out.
type Service struct {
	settings Settings
	logger   *zap.Logger
	delay    time.Duration
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDelay sets the simulated network delay. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service persisting the current user in settings.
func NewService(settings Settings, opts ...Option) *Service {
	s := &Service{
		settings: settings,
		logger:   zap.NewNop(),
		delay:    DefaultDelay,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login signs in with any non-empty email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	return s.signIn(ctx, email, password, "")
}

// Register creates a user with a display name and signs it in.
func (s *Service) Register(ctx context.Context, email, password, name string) (*User, error) {
	return s.signIn(ctx, email, password, strings.TrimSpace(name))
}

func (s *Service) signIn(ctx context.Context, email, password, name string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	u := &User{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: name,
		SignedInAt:  s.now(),
	}
	if err := s.settings.SetJSON(ctx, storageKey, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.logger.Info("signed in", zap.String("user_id", u.ID), zap.Bool("registered", name != ""))
	return u, nil
}

// Logout signs the current user out. Signing out when nobody is signed in
// is not an error.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if err := s.settings.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	s.logger.Info("signed out")
	return nil
}

// Current returns the signed-in user, or nil.
func (s *Service) Current(ctx context.Context) (*User, error) {
	var u User
	ok, err := s.settings.GetJSON(ctx, storageKey, &u)
	if err != nil {
		s.logger.Warn("discarding stored user", zap.Error(err))
		return nil, nil
	}
	if !ok || u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

// RequireUser returns the signed-in user or ErrNotSignedIn.
func (s *Service) RequireUser(ctx context.Context) (*User, error) {
	u, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotSignedIn
	}
	return u, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
