package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"GotYourBack-backend/internal/platform/db"
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsDisabled   bool
	CreatedAt    time.Time

	// プロフィール（登録時は空）
	Department         string
	RegistrationNumber string
	YearOfStudy        sql.NullInt32
}

type UserStore interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, u *User) error
}

type Store struct{ db db.DBTX }

func NewStore(conn db.DBTX) UserStore {
	return &Store{db: conn}
}

const selectUser = `
SELECT user_id, email, name, password_hash, is_disabled, created_at,
       department, registration_number, year_of_study
FROM users
`

func (s *Store) GetByID(ctx context.Context, id string) (*User, error) {
	return s.getOne(ctx, selectUser+`WHERE user_id = ? LIMIT 1`, id)
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.getOne(ctx, selectUser+`WHERE email = ? LIMIT 1`, email)
}

// 見つからなければ nil, nil
func (s *Store) getOne(ctx context.Context, q string, arg string) (*User, error) {
	var u User
	var isDisabledInt int
	err := s.db.QueryRowContext(ctx, q, arg).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&isDisabledInt,
		&u.CreatedAt,
		&u.Department,
		&u.RegistrationNumber,
		&u.YearOfStudy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.IsDisabled = isDisabledInt != 0
	return &u, nil
}

func (s *Store) Create(ctx context.Context, u *User) error {
	const q = `
INSERT INTO users (user_id, email, name, password_hash, is_disabled, created_at)
VALUES (?, ?, ?, ?, 0, ?)
`
	_, err := s.db.ExecContext(ctx, q, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt)
	if db.IsDuplicate(err) {
		return ErrAlreadyExists
	}
	return err
}

// UpdateProfile は name とプロフィール項目だけを書き換える
func (s *Store) UpdateProfile(ctx context.Context, u *User) error {
	const q = `
UPDATE users
SET name = ?, department = ?, registration_number = ?, year_of_study = ?
WHERE user_id = ?
`
	_, err := s.db.ExecContext(ctx, q, u.Name, u.Department, u.RegistrationNumber, u.YearOfStudy, u.ID)
	return err
}
