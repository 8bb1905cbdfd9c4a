package items

import (
	"time"

	"GotYourBack-backend/internal/exchange/lifecycle"
)

// 出品登録リクエスト
type CreateItemRequest struct {
	Type        lifecycle.ItemType `json:"type" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category" binding:"required"`
	Urgency     string             `json:"urgency,omitempty"`
	ImageURL    *string            `json:"image_url,omitempty"`
}

// 出品更新リクエスト（指定されたフィールドのみ更新）。status はリクエスト側が管理するので変更不可
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Urgency     *string `json:"urgency,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type CategoryCount struct {
	Category  string `json:"category"`
	Available int64  `json:"available"`
}

type ItemResponse struct {
	ItemID      string               `json:"item_id"`
	OwnerID     string               `json:"owner_id"`
	Type        lifecycle.ItemType   `json:"type"`
	Status      lifecycle.ItemStatus `json:"status"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Urgency     Urgency              `json:"urgency"`
	ImageURL    *string              `json:"image_url,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ListResult struct {
	Items      []ItemResponse `json:"items"`
	Total      int64          `json:"total"`
	NextOffset *int           `json:"next_offset,omitempty"`
}

func toResponse(it *Item) ItemResponse {
	out := ItemResponse{
		ItemID:      it.ID,
		OwnerID:     it.OwnerID,
		Type:        it.Type,
		Status:      it.Status,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Urgency:     it.Urgency,
		CreatedAt:   it.CreatedAt,
	}
	if it.ImageURL.Valid {
		v := it.ImageURL.String
		out.ImageURL = &v
	}
	return out
}
