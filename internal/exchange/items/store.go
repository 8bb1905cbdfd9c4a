package items

import (
	"context"
	"database/sql"
	"strings"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/db"
)

type Store struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

const itemColumns = `i.item_id, i.owner_id, i.item_type, i.status, i.name, i.description,
	i.category, i.urgency, i.image_url, i.created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*Item, error) {
	var it Item
	if err := row.Scan(
		&it.ID, &it.OwnerID, &it.Type, &it.Status, &it.Name, &it.Description,
		&it.Category, &it.Urgency, &it.ImageURL, &it.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *Store) Insert(ctx context.Context, it *Item) error {
	const q = `
	INSERT INTO items
	(item_id, owner_id, item_type, status, name, description, category, urgency, image_url, created_at)
	VALUES
	(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		it.ID, it.OwnerID, it.Type, it.Status, it.Name, it.Description,
		it.Category, it.Urgency, it.ImageURL, it.CreatedAt,
	)
	return err
}

// Update は説明系のカラムだけを書き換える
func (s *Store) Update(ctx context.Context, it *Item) error {
	const q = `
	UPDATE items
	SET name = ?, description = ?, category = ?, urgency = ?, image_url = ?
	WHERE item_id = ?`
	// MySQL は値が変わらないと affected=0 を返すので件数は見ない
	_, err := s.db.ExecContext(ctx, q, it.Name, it.Description, it.Category, it.Urgency, it.ImageURL, it.ID)
	return err
}

// ListCategories: 出品中の件数つきカテゴリ一覧
func (s *Store) ListCategories(ctx context.Context) ([]CategoryCount, error) {
	const q = `
	SELECT category, COUNT(*)
	FROM items
	WHERE status = 'AVAILABLE'
	GROUP BY category
	ORDER BY category`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Available); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID は見つからなければ sql.ErrNoRows を返す
func (s *Store) GetByID(ctx context.Context, id string) (*Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items i WHERE i.item_id = ?`
	return scanItem(s.db.QueryRowContext(ctx, q, id))
}

// WHERE 句と args を SELECT / COUNT で共通に作る
func buildWhere(f Filter) (string, []any) {
	where := "WHERE 1=1"
	args := []any{}
	if f.Status != nil {
		where += " AND i.status = ?"
		args = append(args, *f.Status)
	}
	if f.Type != nil {
		where += " AND i.item_type = ?"
		args = append(args, *f.Type)
	}
	if f.Urgency != nil {
		where += " AND i.urgency = ?"
		args = append(args, *f.Urgency)
	}
	if f.Category != "" {
		where += " AND i.category = ?"
		args = append(args, f.Category)
	}
	if f.OwnerID != "" {
		where += " AND i.owner_id = ?"
		args = append(args, f.OwnerID)
	}
	if f.ExcludeOwner != "" {
		where += " AND i.owner_id <> ?"
		args = append(args, f.ExcludeOwner)
	}
	if f.Keyword != "" {
		where += " AND (i.name LIKE ? OR i.description LIKE ?)"
		kw := "%" + escapeLike(f.Keyword) + "%"
		args = append(args, kw, kw)
	}
	return where, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func (s *Store) List(ctx context.Context, f Filter, p apierr.Page) ([]Item, int64, error) {
	p = p.Normalize()
	where, args := buildWhere(f)

	countSQL := `SELECT COUNT(*) FROM items i ` + where
	selectSQL := `SELECT ` + itemColumns + ` FROM items i ` + where + `
	ORDER BY i.created_at ` + p.SQLOrder() + `, i.item_id ` + p.SQLOrder() + `
	LIMIT ? OFFSET ?`

	out := []Item{}
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
			it, err := scanItem(rows)
			if err != nil {
				return err
			}
			out = append(out, *it)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
