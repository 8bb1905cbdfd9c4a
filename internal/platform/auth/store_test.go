package auth

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"user_id", "email", "name", "password_hash", "is_disabled", "created_at",
	"department", "registration_number", "year_of_study",
}

func Test_Store_GetByEmail(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	s := NewStore(conn)
	created := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = ? LIMIT 1")).
		WithArgs("a@campus.edu").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("U1", "a@campus.edu", "A", "hash", 1, created, "", "", nil))
	u, err := s.GetByEmail(context.Background(), "a@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, &User{ID: "U1", Email: "a@campus.edu", Name: "A", PasswordHash: "hash", IsDisabled: true, CreatedAt: created}, u)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ? LIMIT 1")).
		WithArgs("U9").
		WillReturnRows(sqlmock.NewRows(userColumns))
	u, err = s.GetByID(context.Background(), "U9")
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_CreateDuplicate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err = NewStore(conn).Create(context.Background(), &User{ID: "U1", Email: "a@campus.edu"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Store_Profile(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	s := NewStore(conn)
	created := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ? LIMIT 1")).
		WithArgs("U1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("U1", "a@campus.edu", "A", "hash", 0, created, "Physics", "22PH104", 3))
	u, err := s.GetByID(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "Physics", u.Department)
	assert.Equal(t, "22PH104", u.RegistrationNumber)
	assert.Equal(t, sql.NullInt32{Int32: 3, Valid: true}, u.YearOfStudy)

	u.Department = "Chemistry"
	u.YearOfStudy = sql.NullInt32{}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs("A", "Chemistry", "22PH104", nil, "U1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.UpdateProfile(context.Background(), u))

	assert.NoError(t, mock.ExpectationsWereMet())
}
