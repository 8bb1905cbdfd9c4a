package requests

import (
	"time"

	"GotYourBack-backend/internal/exchange/lifecycle"
)

type CreateRequestRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type DecisionRequest struct {
	// "ACCEPTED" | "REJECTED"
	Decision string `json:"decision" binding:"required"`
}

type ReturnRequest struct {
	// 省略時は呼び出し元の立場（借り手なら true）から決める
	AsBorrower *bool `json:"as_borrower,omitempty"`
}

type RequestResponse struct {
	RequestID   string                  `json:"request_id"`
	ItemID      string                  `json:"item_id"`
	ItemName    string                  `json:"item_name"`
	ItemType    lifecycle.ItemType      `json:"item_type"`
	ItemStatus  lifecycle.ItemStatus    `json:"item_status"`
	RequesterID string                  `json:"requester_id"`
	OwnerID     string                  `json:"owner_id"`
	Status      lifecycle.RequestStatus `json:"status"`

	LenderMarkedAsLent       bool `json:"lender_marked_as_lent"`
	BorrowerConfirmedReceipt bool `json:"borrower_confirmed_receipt"`
	LenderConfirmedReturn    bool `json:"lender_confirmed_return"`
	BorrowerConfirmedReturn  bool `json:"borrower_confirmed_return"`

	CreatedAt   time.Time  `json:"created_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	LentAt      *time.Time `json:"lent_at,omitempty"`
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// 呼び出し元が次に実行できる操作
	Actions []lifecycle.Action `json:"actions"`
	Version int64              `json:"version"`
}

type ListResult struct {
	Items      []RequestResponse `json:"items"`
	Total      int64             `json:"total"`
	NextOffset *int              `json:"next_offset,omitempty"`
}

func toResponse(rec Record, viewer string) RequestResponse {
	r := rec.Request
	return RequestResponse{
		RequestID:                r.ID,
		ItemID:                   r.ItemID,
		ItemName:                 rec.ItemName,
		ItemType:                 rec.Item.Type,
		ItemStatus:               rec.Item.Status,
		RequesterID:              r.RequesterID,
		OwnerID:                  r.OwnerID,
		Status:                   r.Status,
		LenderMarkedAsLent:       r.LenderMarkedAsLent,
		BorrowerConfirmedReceipt: r.BorrowerConfirmedReceipt,
		LenderConfirmedReturn:    r.LenderConfirmedReturn,
		BorrowerConfirmedReturn:  r.BorrowerConfirmedReturn,
		CreatedAt:                r.CreatedAt,
		DecidedAt:                r.DecidedAt,
		LentAt:                   r.LentAt,
		ReceivedAt:               r.ReceivedAt,
		DoneAt:                   r.DoneAt,
		CompletedAt:              r.CompletedAt,
		Actions:                  lifecycle.ActionsFor(rec.Item, r, viewer),
		Version:                  rec.Version,
	}
}
