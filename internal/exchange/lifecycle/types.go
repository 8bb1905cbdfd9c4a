package lifecycle

import (
	"fmt"
	"time"
)

// ItemType は出品の種類（売る／貸す）
type ItemType string

const (
	ItemTypeSell ItemType = "SELL"
	ItemTypeLend ItemType = "LEND"
)

// ItemStatus は出品の在庫状態
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "AVAILABLE"
	ItemUnavailable ItemStatus = "UNAVAILABLE"
	ItemDone        ItemStatus = "DONE"
)

// RequestStatus はリクエストの状態
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusAccepted RequestStatus = "ACCEPTED"
	StatusRejected RequestStatus = "REJECTED"
	StatusDone     RequestStatus = "DONE"
)

func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemTypeSell, ItemTypeLend:
		return t, nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

func ParseItemStatus(s string) (ItemStatus, error) {
	switch st := ItemStatus(s); st {
	case ItemAvailable, ItemUnavailable, ItemDone:
		return st, nil
	}
	return "", fmt.Errorf("unknown item status %q", s)
}

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case StatusPending, StatusAccepted, StatusRejected, StatusDone:
		return st, nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

// JSON / YAML の境界で未知の値を弾く
func (t *ItemType) UnmarshalText(b []byte) error {
	v, err := ParseItemType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (s *ItemStatus) UnmarshalText(b []byte) error {
	v, err := ParseItemStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *RequestStatus) UnmarshalText(b []byte) error {
	v, err := ParseRequestStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Item is the slice of a catalog record the lifecycle needs.
type Item struct {
	ID      string
	OwnerID string
	Type    ItemType
	Status  ItemStatus
}

// Request is an immutable snapshot; every operation returns a new value.
type Request struct {
	ID          string
	ItemID      string
	RequesterID string
	OwnerID     string
	Status      RequestStatus

	// 貸出（LEND）のみ
	LenderMarkedAsLent       bool
	BorrowerConfirmedReceipt bool
	LenderConfirmedReturn    bool
	BorrowerConfirmedReturn  bool

	CreatedAt   time.Time
	DecidedAt   *time.Time
	LentAt      *time.Time
	ReceivedAt  *time.Time
	DoneAt      *time.Time
	CompletedAt *time.Time
}

// IsClosed reports whether nothing more can happen to the request.
func IsClosed(it Item, r Request) bool {
	switch r.Status {
	case StatusRejected:
		return true
	case StatusDone:
		if it.Type == ItemTypeSell {
			return true
		}
		return r.LenderConfirmedReturn && r.BorrowerConfirmedReturn
	}
	return false
}

// IsOpen: 同じ (item, requester) で同時に存在できないリクエスト
func IsOpen(r Request) bool {
	return r.Status == StatusPending || r.Status == StatusAccepted
}

// ItemStatusAfter derives the item status implied by r.
func ItemStatusAfter(it Item, r Request) ItemStatus {
	switch r.Status {
	case StatusAccepted:
		return ItemUnavailable
	case StatusDone:
		if it.Type == ItemTypeSell {
			return ItemDone
		}
		if r.LenderConfirmedReturn && r.BorrowerConfirmedReturn {
			return ItemAvailable
		}
		return ItemUnavailable
	}
	return it.Status
}

func timePtr(t time.Time) *time.Time { return &t }
