package requests

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/db"
)

var (
	ErrNotFound = errors.New("request not found")
	// ErrStale: 読んだ後に別の書き込みが入った
	ErrStale = errors.New("stale request")
)

type Store interface {
	Get(ctx context.Context, id string) (Record, error)
	ListOpen(ctx context.Context, itemID, requesterID string) ([]lifecycle.Request, error)
	Insert(ctx context.Context, r lifecycle.Request, exp Expect) error
	CompareAndSwap(ctx context.Context, exp Expect, next lifecycle.Request, itemStatus lifecycle.ItemStatus) (int64, error)
	List(ctx context.Context, f Filter, p apierr.Page) ([]Record, int64, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *SQLStore { return &SQLStore{db: conn} }

const selectRecord = `
	SELECT r.request_id, r.item_id, r.requester_id, r.owner_id, r.status,
		r.lender_marked_as_lent, r.borrower_confirmed_receipt,
		r.lender_confirmed_return, r.borrower_confirmed_return,
		r.created_at, r.decided_at, r.lent_at, r.received_at, r.done_at, r.completed_at,
		r.version, i.item_type, i.status, i.name
	FROM requests r
	JOIN items i ON i.item_id = r.item_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	r := &rec.Request
	var decided, lent, received, done, completed sql.NullTime
	if err := row.Scan(
		&r.ID, &r.ItemID, &r.RequesterID, &r.OwnerID, &r.Status,
		&r.LenderMarkedAsLent, &r.BorrowerConfirmedReceipt,
		&r.LenderConfirmedReturn, &r.BorrowerConfirmedReturn,
		&r.CreatedAt, &decided, &lent, &received, &done, &completed,
		&rec.Version, &rec.Item.Type, &rec.Item.Status, &rec.ItemName,
	); err != nil {
		return Record{}, err
	}
	r.DecidedAt = fromNull(decided)
	r.LentAt = fromNull(lent)
	r.ReceivedAt = fromNull(received)
	r.DoneAt = fromNull(done)
	r.CompletedAt = fromNull(completed)
	rec.Item.ID = r.ItemID
	rec.Item.OwnerID = r.OwnerID
	return rec, nil
}

func fromNull(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func toNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, selectRecord+` WHERE r.request_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

const whereOpen = ` WHERE r.item_id = ? AND r.requester_id = ? AND r.status IN ('PENDING', 'ACCEPTED')`

func (s *SQLStore) ListOpen(ctx context.Context, itemID, requesterID string) ([]lifecycle.Request, error) {
	rows, err := s.db.QueryContext(ctx, selectRecord+whereOpen, itemID, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []lifecycle.Request{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec.Request)
	}
	return out, rows.Err()
}

// lockItem は items 行を FOR UPDATE で押さえて現在の status を返す
func lockItem(ctx context.Context, tx db.DBTX, itemID string) (lifecycle.ItemStatus, error) {
	var st lifecycle.ItemStatus
	err := tx.QueryRowContext(ctx, `SELECT status FROM items WHERE item_id = ? FOR UPDATE`, itemID).Scan(&st)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrStale
	}
	return st, err
}

// Insert writes a new PENDING request after re-checking, under the item lock,
// that the item status and the pair's open request count are still as read.
func (s *SQLStore) Insert(ctx context.Context, r lifecycle.Request, exp Expect) error {
	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st, err := lockItem(ctx, tx, r.ItemID)
		if err != nil {
			return err
		}
		var open int
		const countQ = `SELECT COUNT(*) FROM requests r` + whereOpen
		if err := tx.QueryRowContext(ctx, countQ, r.ItemID, r.RequesterID).Scan(&open); err != nil {
			return err
		}
		if st != exp.ItemStatus || open != exp.OpenCount {
			return ErrStale
		}

		const q = `
		INSERT INTO requests
		(request_id, item_id, requester_id, owner_id, status, created_at, version)
		VALUES
		(?, ?, ?, ?, ?, ?, 1)`
		_, err = tx.ExecContext(ctx, q, r.ID, r.ItemID, r.RequesterID, r.OwnerID, r.Status, r.CreatedAt)
		if db.IsDuplicate(err) {
			return ErrStale
		}
		return err
	})
}

// CompareAndSwap replaces the stored request with next if its version is still
// exp.Version and the item status is still exp.ItemStatus, then writes the
// derived item status. Returns the new version.
func (s *SQLStore) CompareAndSwap(ctx context.Context, exp Expect, next lifecycle.Request, itemStatus lifecycle.ItemStatus) (int64, error) {
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		st, err := lockItem(ctx, tx, next.ItemID)
		if err != nil {
			return err
		}
		if st != exp.ItemStatus {
			return ErrStale
		}

		const q = `
		UPDATE requests
		SET status = ?,
			lender_marked_as_lent = ?, borrower_confirmed_receipt = ?,
			lender_confirmed_return = ?, borrower_confirmed_return = ?,
			decided_at = ?, lent_at = ?, received_at = ?, done_at = ?, completed_at = ?,
			version = version + 1
		WHERE request_id = ? AND version = ?`
		res, err := tx.ExecContext(ctx, q,
			next.Status,
			next.LenderMarkedAsLent, next.BorrowerConfirmedReceipt,
			next.LenderConfirmedReturn, next.BorrowerConfirmedReturn,
			toNull(next.DecidedAt), toNull(next.LentAt), toNull(next.ReceivedAt), toNull(next.DoneAt), toNull(next.CompletedAt),
			next.ID, exp.Version,
		)
		if err != nil {
			return err
		}
		aff, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if aff != 1 {
			return ErrStale
		}

		if itemStatus != st {
			if _, err := tx.ExecContext(ctx, `UPDATE items SET status = ? WHERE item_id = ?`, itemStatus, next.ItemID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return exp.Version + 1, nil
}

// WHERE 句と args を SELECT / COUNT で共通に作る
func buildWhere(f Filter) (string, []any) {
	where := " WHERE 1=1"
	args := []any{}
	switch f.Role {
	case RoleSent:
		where += " AND r.requester_id = ?"
		args = append(args, f.UserID)
	case RoleReceived:
		where += " AND r.owner_id = ?"
		args = append(args, f.UserID)
	default:
		where += " AND (r.requester_id = ? OR r.owner_id = ?)"
		args = append(args, f.UserID, f.UserID)
	}
	if f.Status != nil {
		where += " AND r.status = ?"
		args = append(args, *f.Status)
	}
	if f.ActiveOnly {
		where += " AND r.status <> 'REJECTED' AND r.completed_at IS NULL"
	}
	return where, args
}

func (s *SQLStore) List(ctx context.Context, f Filter, p apierr.Page) ([]Record, int64, error) {
	p = p.Normalize()
	where, args := buildWhere(f)

	countSQL := `SELECT COUNT(*) FROM requests r` + where
	selectSQL := selectRecord + where + `
	ORDER BY r.created_at ` + p.SQLOrder() + `, r.request_id ` + p.SQLOrder() + `
	LIMIT ? OFFSET ?`

	out := []Record{}
	var total int64
	err := db.ReadOnly(ctx, s.db, func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
			return err
		}

		queryArgs := append(append([]any{}, args...), p.Limit, p.Offset)
		rows, err := tx.QueryContext(ctx, selectSQL, queryArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			rec, err := scanRecord(rows)
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
