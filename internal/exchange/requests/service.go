package requests

import (
	"context"
	"database/sql"
	"log"
	"time"

	"GotYourBack-backend/internal/exchange/events"
	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/ids"
)

// ItemCatalog supplies the item a request points at.
type ItemCatalog interface {
	GetItem(ctx context.Context, id string) (lifecycle.Item, error)
}

// ===== Service本体 =====

type Service struct {
	store   Store
	catalog ItemCatalog
	pub     events.Publisher
	clock   ids.Clock
	id      ids.IDGen
}

func NewService(conn *sql.DB, catalog ItemCatalog, pub events.Publisher) *Service {
	return newService(NewStore(conn), catalog, pub, ids.RealClock{}, ids.NewULIDGen())
}

func newService(store Store, catalog ItemCatalog, pub events.Publisher, clock ids.Clock, id ids.IDGen) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{store: store, catalog: catalog, pub: pub, clock: clock, id: id}
}

// リクエスト作成
func (s *Service) Create(ctx context.Context, actor, itemID string) (RequestResponse, error) {
	if itemID == "" {
		return RequestResponse{}, apierr.ErrInvalid("item_id is required")
	}
	it, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return RequestResponse{}, err
	}
	open, err := s.store.ListOpen(ctx, itemID, actor)
	if err != nil {
		return RequestResponse{}, err
	}
	id, err := s.id.New()
	if err != nil {
		return RequestResponse{}, err
	}

	r, err := lifecycle.Create(it, actor, open, id, s.clock.Now())
	if err != nil {
		return RequestResponse{}, toAPIError(err)
	}
	if err := s.store.Insert(ctx, r, Expect{ItemStatus: it.Status, OpenCount: len(open)}); err != nil {
		return RequestResponse{}, toAPIError(err)
	}

	rec, err := s.store.Get(ctx, r.ID)
	if err != nil {
		return RequestResponse{}, toAPIError(err)
	}
	s.publish(ctx, events.KindRequestCreated, rec, actor)
	return toResponse(rec, actor), nil
}

// Get は当事者のみ参照できる
func (s *Service) Get(ctx context.Context, actor, id string) (RequestResponse, error) {
	rec, err := s.Lookup(ctx, actor, id)
	if err != nil {
		return RequestResponse{}, err
	}
	return toResponse(rec, actor), nil
}

// Lookup loads a request for one of its parties. Messages use it for the
// membership check.
func (s *Service) Lookup(ctx context.Context, actor, id string) (Record, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, toAPIError(err)
	}
	if actor != rec.Request.RequesterID && actor != rec.Request.OwnerID {
		return Record{}, apierr.ErrForbidden("not a party of this request")
	}
	return rec, nil
}

// ListQuery は GET /requests のクエリ（未パース）
type ListQuery struct {
	Role       string
	Status     string
	ActiveOnly bool
}

func (s *Service) List(ctx context.Context, actor string, q ListQuery, p apierr.Page) (ListResult, error) {
	role, err := ParseRole(q.Role)
	if err != nil {
		return ListResult{}, apierr.ErrInvalid("role must be sent, received or all")
	}
	f := Filter{UserID: actor, Role: role, ActiveOnly: q.ActiveOnly}
	if q.Status != "" {
		st, err := lifecycle.ParseRequestStatus(q.Status)
		if err != nil {
			return ListResult{}, apierr.ErrInvalid("status must be PENDING, ACCEPTED, REJECTED or DONE")
		}
		f.Status = &st
	}

	p = p.Normalize()
	list, total, err := s.store.List(ctx, f, p)
	if err != nil {
		return ListResult{}, err
	}
	out := ListResult{Items: make([]RequestResponse, 0, len(list)), Total: total}
	for _, rec := range list {
		out.Items = append(out.Items, toResponse(rec, actor))
	}
	out.NextOffset = p.NextOffset(len(list), total)
	return out, nil
}

// ===== 状態遷移 =====

func (s *Service) Decide(ctx context.Context, actor, id, decision string) (RequestResponse, error) {
	d, err := lifecycle.ParseRequestStatus(decision)
	if err != nil {
		return RequestResponse{}, apierr.ErrInvalid("decision must be ACCEPTED or REJECTED")
	}
	return s.transition(ctx, actor, id, func(it lifecycle.Item, r lifecycle.Request, now time.Time) (lifecycle.Request, error) {
		return lifecycle.Decide(it, r, actor, d, now)
	})
}

func (s *Service) MarkAsLent(ctx context.Context, actor, id string) (RequestResponse, error) {
	return s.transition(ctx, actor, id, func(it lifecycle.Item, r lifecycle.Request, now time.Time) (lifecycle.Request, error) {
		return lifecycle.MarkAsLent(it, r, actor, now)
	})
}

func (s *Service) ConfirmReceipt(ctx context.Context, actor, id string) (RequestResponse, error) {
	return s.transition(ctx, actor, id, func(it lifecycle.Item, r lifecycle.Request, now time.Time) (lifecycle.Request, error) {
		return lifecycle.ConfirmReceipt(it, r, actor, now)
	})
}

func (s *Service) MarkDone(ctx context.Context, actor, id string) (RequestResponse, error) {
	return s.transition(ctx, actor, id, func(it lifecycle.Item, r lifecycle.Request, now time.Time) (lifecycle.Request, error) {
		return lifecycle.MarkDone(it, r, actor, now)
	})
}

// ConfirmReturn: asBorrower が nil なら actor の立場から決める
func (s *Service) ConfirmReturn(ctx context.Context, actor, id string, asBorrower *bool) (RequestResponse, error) {
	return s.transition(ctx, actor, id, func(it lifecycle.Item, r lifecycle.Request, now time.Time) (lifecycle.Request, error) {
		borrower := actor == r.RequesterID
		if asBorrower != nil {
			borrower = *asBorrower
		}
		return lifecycle.ConfirmReturn(it, r, actor, borrower, now)
	})
}

type transitionFunc func(it lifecycle.Item, r lifecycle.Request, now time.Time) (lifecycle.Request, error)

// transition は 読み込み → コア検証 → CAS → イベント の共通処理。
// CAS に負けたら CONFLICT を返し、再試行は呼び出し側に任せる
func (s *Service) transition(ctx context.Context, actor, id string, fn transitionFunc) (RequestResponse, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return RequestResponse{}, toAPIError(err)
	}

	prev := rec.Request
	next, err := fn(rec.Item, prev, s.clock.Now())
	if err != nil {
		return RequestResponse{}, toAPIError(err)
	}
	// 冪等な確認の繰り返しは書き込みもイベントも無し
	if next == prev {
		return toResponse(rec, actor), nil
	}

	itemStatus := lifecycle.ItemStatusAfter(rec.Item, next)
	ver, err := s.store.CompareAndSwap(ctx, Expect{Version: rec.Version, ItemStatus: rec.Item.Status}, next, itemStatus)
	if err != nil {
		return RequestResponse{}, toAPIError(err)
	}
	rec.Request = next
	rec.Item.Status = itemStatus
	rec.Version = ver

	s.publish(ctx, eventKind(prev, next), rec, actor)
	return toResponse(rec, actor), nil
}

// eventKind names the change from prev to next. Exactly one field group moves
// per operation.
func eventKind(prev, next lifecycle.Request) events.Kind {
	switch {
	case prev.Status != next.Status:
		switch next.Status {
		case lifecycle.StatusAccepted:
			return events.KindRequestAccepted
		case lifecycle.StatusRejected:
			return events.KindRequestRejected
		default:
			return events.KindRequestDone
		}
	case !prev.LenderMarkedAsLent && next.LenderMarkedAsLent:
		return events.KindItemLent
	case !prev.BorrowerConfirmedReceipt && next.BorrowerConfirmedReceipt:
		return events.KindReceiptConfirmed
	case next.LenderConfirmedReturn && next.BorrowerConfirmedReturn:
		return events.KindReturnCompleted
	}
	return events.KindReturnConfirmed
}

// publish はコミット後のベストエフォート。失敗してもリクエストは成功のまま
func (s *Service) publish(ctx context.Context, kind events.Kind, rec Record, actor string) {
	eventID, err := s.id.New()
	if err != nil {
		log.Printf("[WARN] event id for %s %s: %v", kind, rec.Request.ID, err)
		return
	}
	e := events.Event{
		EventID:     eventID,
		Kind:        kind,
		RequestID:   rec.Request.ID,
		ItemID:      rec.Request.ItemID,
		OwnerID:     rec.Request.OwnerID,
		RequesterID: rec.Request.RequesterID,
		ActorID:     actor,
		Status:      string(rec.Request.Status),
		OccurredAt:  s.clock.Now(),
	}
	if err := s.pub.Publish(ctx, e); err != nil {
		log.Printf("[WARN] publish %s for request %s: %v", kind, rec.Request.ID, err)
	}
}
