package messages

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"unicode/utf8"

	"GotYourBack-backend/internal/exchange/events"
	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/exchange/requests"
	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/ids"
)

const maxContentLen = 2000

// RequestLookup loads a request for one of its parties.
type RequestLookup interface {
	Lookup(ctx context.Context, actor, id string) (requests.Record, error)
}

type messageStore interface {
	Insert(ctx context.Context, m Message) error
	ListByRequest(ctx context.Context, requestID string, p apierr.Page) ([]Message, int64, error)
	ListByUser(ctx context.Context, userID string, p apierr.Page) ([]Message, int64, error)
}

type Service struct {
	store    messageStore
	requests RequestLookup
	pub      events.Publisher
	clock    ids.Clock
	id       ids.IDGen
}

func NewService(conn *sql.DB, lookup RequestLookup, pub events.Publisher) *Service {
	return newService(NewStore(conn), lookup, pub, ids.RealClock{}, ids.NewULIDGen())
}

func newService(store messageStore, lookup RequestLookup, pub events.Publisher, clock ids.Clock, id ids.IDGen) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{store: store, requests: lookup, pub: pub, clock: clock, id: id}
}

// Send posts a message from actor to the other party of the request.
func (s *Service) Send(ctx context.Context, actor, requestID, content string) (MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxContentLen {
		return MessageResponse{}, apierr.ErrInvalid("content is required (max 2000 characters)")
	}

	rec, err := s.requests.Lookup(ctx, actor, requestID)
	if err != nil {
		return MessageResponse{}, err
	}
	if err := lifecycle.CanMessage(rec.Request); err != nil {
		return MessageResponse{}, apierr.ErrConflict(err.Error())
	}
	receiver, err := lifecycle.Counterparty(rec.Request, actor)
	if err != nil {
		return MessageResponse{}, apierr.ErrForbidden(err.Error())
	}

	id, err := s.id.New()
	if err != nil {
		return MessageResponse{}, err
	}
	m := Message{
		ID:         id,
		RequestID:  rec.Request.ID,
		SenderID:   actor,
		ReceiverID: receiver,
		Content:    content,
		SentAt:     s.clock.Now(),
	}
	if err := s.store.Insert(ctx, m); err != nil {
		return MessageResponse{}, err
	}

	s.publish(ctx, rec, m)
	return toResponse(m), nil
}

// List は当事者のみ。ページの order は無視して常に古い順
func (s *Service) List(ctx context.Context, actor, requestID string, p apierr.Page) (ListResult, error) {
	if _, err := s.requests.Lookup(ctx, actor, requestID); err != nil {
		return ListResult{}, err
	}
	p = p.Normalize()
	list, total, err := s.store.ListByRequest(ctx, requestID, p)
	if err != nil {
		return ListResult{}, err
	}
	return toListResult(list, total, p), nil
}

// Inbox: actor が送受信したメッセージ。既定は新しい順
func (s *Service) Inbox(ctx context.Context, actor string, p apierr.Page) (ListResult, error) {
	p = p.Normalize()
	list, total, err := s.store.ListByUser(ctx, actor, p)
	if err != nil {
		return ListResult{}, err
	}
	return toListResult(list, total, p), nil
}

func toListResult(list []Message, total int64, p apierr.Page) ListResult {
	out := ListResult{Items: make([]MessageResponse, 0, len(list)), Total: total}
	for _, m := range list {
		out.Items = append(out.Items, toResponse(m))
	}
	out.NextOffset = p.NextOffset(len(list), total)
	return out
}

func (s *Service) publish(ctx context.Context, rec requests.Record, m Message) {
	eventID, err := s.id.New()
	if err != nil {
		log.Printf("[WARN] event id for message %s: %v", m.ID, err)
		return
	}
	e := events.Event{
		EventID:     eventID,
		Kind:        events.KindMessageSent,
		RequestID:   rec.Request.ID,
		ItemID:      rec.Request.ItemID,
		OwnerID:     rec.Request.OwnerID,
		RequesterID: rec.Request.RequesterID,
		ActorID:     m.SenderID,
		Status:      string(rec.Request.Status),
		MessageID:   m.ID,
		OccurredAt:  m.SentAt,
	}
	if err := s.pub.Publish(ctx, e); err != nil {
		log.Printf("[WARN] publish %s for request %s: %v", e.Kind, e.RequestID, err)
	}
}
