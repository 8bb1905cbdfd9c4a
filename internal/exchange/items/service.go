package items

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"unicode/utf8"

	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/ids"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 2000
	maxCategoryLen    = 50
	maxImageURLLen    = 500
)

type itemStore interface {
	Insert(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	List(ctx context.Context, f Filter, p apierr.Page) ([]Item, int64, error)
	ListCategories(ctx context.Context) ([]CategoryCount, error)
}

type Service struct {
	store itemStore
	clock ids.Clock
	id    ids.IDGen
}

func NewService(conn *sql.DB) *Service {
	return newService(NewStore(conn), ids.RealClock{}, ids.NewULIDGen())
}

func newService(store itemStore, clock ids.Clock, id ids.IDGen) *Service {
	return &Service{store: store, clock: clock, id: id}
}

// 出品登録
func (s *Service) CreateItem(ctx context.Context, ownerID string, in CreateItemRequest) (ItemResponse, error) {
	if _, err := lifecycle.ParseItemType(string(in.Type)); err != nil {
		return ItemResponse{}, apierr.ErrInvalid("type must be SELL or LEND")
	}
	it := &Item{
		OwnerID:   ownerID,
		Type:      in.Type,
		Status:    lifecycle.ItemAvailable,
		CreatedAt: s.clock.Now(),
	}
	if err := applyFields(it, &in.Name, &in.Description, &in.Category, &in.Urgency, in.ImageURL); err != nil {
		return ItemResponse{}, err
	}

	var err error
	if it.ID, err = s.id.New(); err != nil {
		return ItemResponse{}, err
	}
	if err := s.store.Insert(ctx, it); err != nil {
		return ItemResponse{}, err
	}
	return toResponse(it), nil
}

// UpdateItem は出品者のみ。売却済み（DONE）は変更できない
func (s *Service) UpdateItem(ctx context.Context, actor, id string, in UpdateItemRequest) (ItemResponse, error) {
	it, err := s.find(ctx, id)
	if err != nil {
		return ItemResponse{}, err
	}
	if it.OwnerID != actor {
		return ItemResponse{}, apierr.ErrForbidden("only the owner can edit this item")
	}
	if it.Status == lifecycle.ItemDone {
		return ItemResponse{}, apierr.ErrConflict("item is already sold")
	}
	if err := applyFields(it, in.Name, in.Description, in.Category, in.Urgency, in.ImageURL); err != nil {
		return ItemResponse{}, err
	}
	if err := s.store.Update(ctx, it); err != nil {
		return ItemResponse{}, err
	}
	return toResponse(it), nil
}

// applyFields は nil 以外のフィールドを正規化・検証して it に反映する
func applyFields(it *Item, name, desc, category, urgency, imageURL *string) error {
	if name != nil {
		v := normalizeText(*name)
		if v == "" || utf8.RuneCountInString(v) > maxNameLen {
			return apierr.ErrInvalid("name is required (max 100 characters)")
		}
		it.Name = v
	}
	if desc != nil {
		v := normalizeText(*desc)
		if utf8.RuneCountInString(v) > maxDescriptionLen {
			return apierr.ErrInvalid("description is too long (max 2000 characters)")
		}
		it.Description = v
	}
	if category != nil {
		v := normalizeCategory(*category)
		if v == "" || utf8.RuneCountInString(v) > maxCategoryLen {
			return apierr.ErrInvalid("category is required (max 50 characters)")
		}
		it.Category = v
	}
	if urgency != nil {
		u, err := ParseUrgency(*urgency)
		if err != nil {
			return apierr.ErrInvalid("urgency must be NORMAL or URGENT")
		}
		it.Urgency = u
	}
	if imageURL != nil {
		// 空文字は画像の削除
		if *imageURL == "" {
			it.ImageURL = sql.NullString{}
		} else if !validImageURL(*imageURL) {
			return apierr.ErrInvalid("image_url must be an http(s) URL")
		} else {
			it.ImageURL = sql.NullString{String: *imageURL, Valid: true}
		}
	}
	return nil
}

func validImageURL(raw string) bool {
	if len(raw) > maxImageURLLen {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (s *Service) ListCategories(ctx context.Context) ([]CategoryCount, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) find(ctx context.Context, id string) (*Item, error) {
	it, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierr.ErrNotFound("item not found")
		}
		return nil, err
	}
	return it, nil
}

func (s *Service) GetItemDetail(ctx context.Context, id string) (ItemResponse, error) {
	it, err := s.find(ctx, id)
	if err != nil {
		return ItemResponse{}, err
	}
	return toResponse(it), nil
}

// GetItem implements the catalog lookup used by the request service.
func (s *Service) GetItem(ctx context.Context, id string) (lifecycle.Item, error) {
	it, err := s.find(ctx, id)
	if err != nil {
		return lifecycle.Item{}, err
	}
	return it.Core(), nil
}

// ListQuery は GET /items のクエリ（未パース）
type ListQuery struct {
	Status     string
	Type       string
	Urgency    string
	Category   string
	OwnerID    string
	Keyword    string
	ExcludeOwn bool
}

func (s *Service) ListItems(ctx context.Context, viewerID string, q ListQuery, p apierr.Page) (ListResult, error) {
	f := Filter{
		Category: normalizeCategory(q.Category),
		OwnerID:  q.OwnerID,
		Keyword:  normalizeText(q.Keyword),
	}

	// status 未指定なら出品中のみ。"ALL" で全件
	switch q.Status {
	case "":
		st := lifecycle.ItemAvailable
		f.Status = &st
	case "ALL":
	default:
		st, err := lifecycle.ParseItemStatus(q.Status)
		if err != nil {
			return ListResult{}, apierr.ErrInvalid("status must be AVAILABLE, UNAVAILABLE, DONE or ALL")
		}
		f.Status = &st
	}
	if q.Type != "" {
		t, err := lifecycle.ParseItemType(q.Type)
		if err != nil {
			return ListResult{}, apierr.ErrInvalid("type must be SELL or LEND")
		}
		f.Type = &t
	}
	if q.Urgency != "" {
		u, err := ParseUrgency(q.Urgency)
		if err != nil {
			return ListResult{}, apierr.ErrInvalid("urgency must be NORMAL or URGENT")
		}
		f.Urgency = &u
	}
	if q.ExcludeOwn {
		f.ExcludeOwner = viewerID
	}

	p = p.Normalize()
	list, total, err := s.store.List(ctx, f, p)
	if err != nil {
		return ListResult{}, err
	}
	out := ListResult{Items: make([]ItemResponse, 0, len(list)), Total: total}
	for i := range list {
		out.Items = append(out.Items, toResponse(&list[i]))
	}
	out.NextOffset = p.NextOffset(len(list), total)
	return out, nil
}
