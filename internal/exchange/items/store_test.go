package items

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/platform/apierr"
)

var createdAt = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

var itemRowColumns = []string{
	"item_id", "owner_id", "item_type", "status", "name", "description",
	"category", "urgency", "image_url", "created_at",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewStore(conn), mock
}

func Test_Store_Insert(t *testing.T) {
	s, mock := newMockStore(t)
	it := &Item{
		ID: "I1", OwnerID: "U1", Type: lifecycle.ItemTypeLend, Status: lifecycle.ItemAvailable,
		Name: "Calculator", Description: "fx-991", Category: "electronics", Urgency: UrgencyNormal,
		CreatedAt: createdAt,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items")).
		WithArgs("I1", "U1", "LEND", "AVAILABLE", "Calculator", "fx-991", "electronics", "NORMAL", nil, createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Insert(context.Background(), it))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_GetByID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM items i WHERE i.item_id = ?")).
		WithArgs("I1").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow("I1", "U1", "SELL", "AVAILABLE", "Desk lamp", "", "furniture", "URGENT", "https://img.example/1.png", createdAt))

	it, err := s.GetByID(context.Background(), "I1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ItemTypeSell, it.Type)
	assert.Equal(t, UrgencyUrgent, it.Urgency)
	assert.Equal(t, sql.NullString{String: "https://img.example/1.png", Valid: true}, it.ImageURL)

	mock.ExpectQuery(regexp.QuoteMeta("FROM items i WHERE i.item_id = ?")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)
	_, err = s.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_List_BuildsFilter(t *testing.T) {
	s, mock := newMockStore(t)
	st := lifecycle.ItemAvailable
	typ := lifecycle.ItemTypeLend
	f := Filter{Status: &st, Type: &typ, Category: "books", ExcludeOwner: "U1", Keyword: "50%_off"}

	where := "WHERE 1=1 AND i.status = ? AND i.item_type = ? AND i.category = ? AND i.owner_id <> ? AND (i.name LIKE ? OR i.description LIKE ?)"
	kw := `%50\%\_off%`

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM items i "+where)).
		WithArgs("AVAILABLE", "LEND", "books", "U1", kw, kw).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(where)+`\s+ORDER BY i\.created_at ASC, i\.item_id ASC\s+LIMIT \? OFFSET \?`).
		WithArgs("AVAILABLE", "LEND", "books", "U1", kw, kw, 2, 0).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow("I2", "U2", "LEND", "AVAILABLE", "Textbook", "", "books", "NORMAL", nil, createdAt).
			AddRow("I3", "U3", "LEND", "AVAILABLE", "Novel", "", "books", "NORMAL", nil, createdAt))
	mock.ExpectCommit()

	list, total, err := s.List(context.Background(), f, apierr.Page{Limit: 2, Order: "asc"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "I2", list[0].ID)
	assert.False(t, list[1].ImageURL.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_Update(t *testing.T) {
	s, mock := newMockStore(t)
	it := &Item{
		ID: "I1", Name: "Calculator", Description: "fx-991 (with case)", Category: "electronics",
		Urgency: UrgencyUrgent, ImageURL: sql.NullString{String: "https://img.example/c.png", Valid: true},
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items")).
		WithArgs("Calculator", "fx-991 (with case)", "electronics", "URGENT", "https://img.example/c.png", "I1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Update(context.Background(), it))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_ListCategories(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY category")).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("books", 4).
			AddRow("misc", 1))

	got, err := s.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{"books", 4}, {"misc", 1}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
