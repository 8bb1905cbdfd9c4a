package items

import (
	"database/sql"
	"fmt"
	"time"

	"GotYourBack-backend/internal/exchange/lifecycle"
)

type Urgency string

const (
	UrgencyNormal Urgency = "NORMAL"
	UrgencyUrgent Urgency = "URGENT"
)

func ParseUrgency(s string) (Urgency, error) {
	switch u := Urgency(s); u {
	case UrgencyNormal, UrgencyUrgent:
		return u, nil
	case "":
		return UrgencyNormal, nil
	}
	return "", fmt.Errorf("unknown urgency %q", s)
}

// Item は items テーブルの1行を表す
type Item struct {
	ID          string
	OwnerID     string
	Type        lifecycle.ItemType
	Status      lifecycle.ItemStatus
	Name        string
	Description string
	Category    string
	Urgency     Urgency
	ImageURL    sql.NullString
	CreatedAt   time.Time
}

// Core returns the fields the request lifecycle works with.
func (it *Item) Core() lifecycle.Item {
	return lifecycle.Item{
		ID:      it.ID,
		OwnerID: it.OwnerID,
		Type:    it.Type,
		Status:  it.Status,
	}
}

// 一覧取得用の検索条件
type Filter struct {
	Status       *lifecycle.ItemStatus
	Type         *lifecycle.ItemType
	Urgency      *Urgency
	Category     string
	OwnerID      string
	ExcludeOwner string // 閲覧者自身の出品を除く
	Keyword      string
}
