package profiles

import (
	"context"
	"database/sql"
)

type Store struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

// Stats: 出品数（全状態）、進行中の申請（PENDING/ACCEPTED）、完了した申請（DONE）
func (s *Store) Stats(ctx context.Context, userID string) (Stats, error) {
	const q = `
	SELECT
		(SELECT COUNT(*) FROM items WHERE owner_id = ?),
		(SELECT COUNT(*) FROM requests WHERE requester_id = ? AND status IN ('PENDING', 'ACCEPTED')),
		(SELECT COUNT(*) FROM requests WHERE requester_id = ? AND status = 'DONE')`
	var st Stats
	err := s.db.QueryRowContext(ctx, q, userID, userID, userID).
		Scan(&st.TotalListings, &st.ActiveRequests, &st.CompletedDeals)
	return st, err
}
