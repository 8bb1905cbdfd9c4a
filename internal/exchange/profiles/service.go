package profiles

import (
	"context"
	"database/sql"
	"strings"
	"unicode/utf8"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/auth"
)

const (
	maxNameLen         = 100
	maxDepartmentLen   = 100
	maxRegistrationLen = 50
	maxYearOfStudy     = 10
)

// UserDirectory is the part of auth.UserStore the profile needs.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
	UpdateProfile(ctx context.Context, u *auth.User) error
}

type statsStore interface {
	Stats(ctx context.Context, userID string) (Stats, error)
}

type Service struct {
	users UserDirectory
	stats statsStore
}

func NewService(conn *sql.DB, users UserDirectory) *Service {
	return newService(users, NewStore(conn))
}

func newService(users UserDirectory, stats statsStore) *Service {
	return &Service{users: users, stats: stats}
}

func (s *Service) Get(ctx context.Context, userID string) (ProfileResponse, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}
	return s.withStats(ctx, u)
}

// Update は本人のプロフィールのみ（userID は認証済みの呼び出し元）
func (s *Service) Update(ctx context.Context, userID string, in UpdateProfileRequest) (ProfileResponse, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" || utf8.RuneCountInString(v) > maxNameLen {
			return ProfileResponse{}, apierr.ErrInvalid("name is required (max 100 characters)")
		}
		u.Name = v
	}
	if in.Department != nil {
		v := strings.TrimSpace(*in.Department)
		if utf8.RuneCountInString(v) > maxDepartmentLen {
			return ProfileResponse{}, apierr.ErrInvalid("department is too long (max 100 characters)")
		}
		u.Department = v
	}
	if in.RegistrationNumber != nil {
		v := strings.TrimSpace(*in.RegistrationNumber)
		if utf8.RuneCountInString(v) > maxRegistrationLen {
			return ProfileResponse{}, apierr.ErrInvalid("registration_number is too long (max 50 characters)")
		}
		u.RegistrationNumber = v
	}
	if in.YearOfStudy != nil {
		switch y := *in.YearOfStudy; {
		case y == 0:
			u.YearOfStudy = sql.NullInt32{}
		case y < 0 || y > maxYearOfStudy:
			return ProfileResponse{}, apierr.ErrInvalid("year_of_study must be between 1 and 10")
		default:
			u.YearOfStudy = sql.NullInt32{Int32: y, Valid: true}
		}
	}

	if err := s.users.UpdateProfile(ctx, u); err != nil {
		return ProfileResponse{}, err
	}
	return s.withStats(ctx, u)
}

func (s *Service) find(ctx context.Context, userID string) (*auth.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	// auth.Store は見つからないとき nil, nil
	if u == nil {
		return nil, apierr.ErrNotFound("user not found")
	}
	return u, nil
}

func (s *Service) withStats(ctx context.Context, u *auth.User) (ProfileResponse, error) {
	st, err := s.stats.Stats(ctx, u.ID)
	if err != nil {
		return ProfileResponse{}, err
	}
	return toResponse(u, st), nil
}
