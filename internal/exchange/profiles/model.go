package profiles

import (
	"time"

	"GotYourBack-backend/internal/platform/auth"
)

// Stats は items / requests から集計する（保存しない）
type Stats struct {
	TotalListings  int64 `json:"total_listings"`
	ActiveRequests int64 `json:"active_requests"`
	CompletedDeals int64 `json:"completed_deals"`
}

type ProfileResponse struct {
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Department         string    `json:"department"`
	RegistrationNumber string    `json:"registration_number"`
	YearOfStudy        *int32    `json:"year_of_study"`
	CreatedAt          time.Time `json:"created_at"`
	Stats
}

// 指定されたフィールドのみ更新。year_of_study は 0 で未設定に戻す
type UpdateProfileRequest struct {
	Name               *string `json:"name,omitempty"`
	Department         *string `json:"department,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	YearOfStudy        *int32  `json:"year_of_study,omitempty"`
}

func toResponse(u *auth.User, st Stats) ProfileResponse {
	res := ProfileResponse{
		UserID:             u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Department:         u.Department,
		RegistrationNumber: u.RegistrationNumber,
		CreatedAt:          u.CreatedAt,
		Stats:              st,
	}
	if u.YearOfStudy.Valid {
		y := u.YearOfStudy.Int32
		res.YearOfStudy = &y
	}
	return res
}
