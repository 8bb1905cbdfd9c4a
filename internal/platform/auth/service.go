package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"GotYourBack-backend/internal/platform/ids"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidLogin  = errors.New("authentication failed")
	ErrDisabled      = errors.New("account disabled")
	ErrInvalidInput  = errors.New("invalid input")
)

const minPasswordLen = 8

type Service struct {
	store  UserStore
	secret []byte
	ttl    time.Duration
	clock  ids.Clock
	id     ids.IDGen
}

func NewService(store UserStore, secret []byte, ttl time.Duration) *Service {
	return newService(store, secret, ttl, ids.RealClock{}, ids.NewULIDGen())
}

func newService(store UserStore, secret []byte, ttl time.Duration, clock ids.Clock, id ids.IDGen) *Service {
	return &Service{store: store, secret: secret, ttl: ttl, clock: clock, id: id}
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, name, password string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidLogin
	}
	if u.IsDisabled {
		return "", ErrDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidLogin
	}
	return s.issue(u.ID)
}

func (s *Service) issue(userID string) (string, error) {
	now := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

func (s *Service) Register(ctx context.Context, email, name, password string) (*User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidInput
	}
	if name == "" || utf8.RuneCountInString(name) > 100 || len(password) < minPasswordLen {
		return nil, ErrInvalidInput
	}

	exists, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists != nil {
		return nil, ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := s.id.New()
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	u := &User{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
