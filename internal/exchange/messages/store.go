package messages

import (
	"context"
	"database/sql"
	"fmt"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/db"
)

type Store struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

func (s *Store) Insert(ctx context.Context, m Message) error {
	const q = `
	INSERT INTO messages
	(message_id, request_id, sender_id, receiver_id, content, sent_at)
	VALUES
	(?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, m.ID, m.RequestID, m.SenderID, m.ReceiverID, m.Content, m.SentAt)
	return err
}

// ListByRequest は古い順（会話の表示順）で返す
func (s *Store) ListByRequest(ctx context.Context, requestID string, p apierr.Page) ([]Message, int64, error) {
	p = p.Normalize()
	const countQ = `SELECT COUNT(*) FROM messages WHERE request_id = ?`
	const q = `
	SELECT message_id, request_id, sender_id, receiver_id, content, sent_at
	FROM messages
	WHERE request_id = ?
	ORDER BY sent_at ASC, message_id ASC
	LIMIT ? OFFSET ?`
	return s.list(ctx, countQ, q, []any{requestID}, p)
}

// ListByUser は userID が送信者または受信者のメッセージ（全リクエスト横断）
func (s *Store) ListByUser(ctx context.Context, userID string, p apierr.Page) ([]Message, int64, error) {
	p = p.Normalize()
	const where = `WHERE sender_id = ? OR receiver_id = ?`
	countQ := `SELECT COUNT(*) FROM messages ` + where
	q := fmt.Sprintf(`
	SELECT message_id, request_id, sender_id, receiver_id, content, sent_at
	FROM messages
	%s
	ORDER BY sent_at %s, message_id %s
	LIMIT ? OFFSET ?`, where, p.SQLOrder(), p.SQLOrder())
	return s.list(ctx, countQ, q, []any{userID, userID}, p)
}

func (s *Store) list(ctx context.Context, countQ, q string, args []any, p apierr.Page) ([]Message, int64, error) {
	out := []Message{}
	var total int64
	err := db.ReadOnly(ctx, s.db, func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
			return err
		}
		rows, err := tx.QueryContext(ctx, q, append(args, p.Limit, p.Offset)...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m Message
			if err := rows.Scan(&m.ID, &m.RequestID, &m.SenderID, &m.ReceiverID, &m.Content, &m.SentAt); err != nil {
				return err
			}
			out = append(out, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
