package requests

import (
	"fmt"

	"GotYourBack-backend/internal/exchange/lifecycle"
)

// Record はリクエストと、それが指す出品のスナップショット
type Record struct {
	Request  lifecycle.Request
	Item     lifecycle.Item
	ItemName string
	Version  int64
}

type Role string

const (
	RoleSent     Role = "sent"     // 自分が出したリクエスト
	RoleReceived Role = "received" // 自分の出品に来たリクエスト
	RoleAll      Role = "all"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleSent, RoleReceived, RoleAll:
		return r, nil
	case "":
		return RoleAll, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// 一覧取得用の検索条件
type Filter struct {
	UserID     string
	Role       Role
	Status     *lifecycle.RequestStatus
	ActiveOnly bool // REJECTED と完了済みを除く
}

// Expect は書き込み時に DB 側で再確認する値
type Expect struct {
	Version    int64
	ItemStatus lifecycle.ItemStatus
	OpenCount  int // Insert のみ
}
