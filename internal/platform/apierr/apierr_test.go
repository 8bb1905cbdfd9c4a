package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalid("x"), http.StatusBadRequest},
		{ErrForbidden("x"), http.StatusForbidden},
		{ErrNotFound("x"), http.StatusNotFound},
		{ErrConflict("x"), http.StatusConflict},
		{ErrInternal("x"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrConflict("x")), http.StatusConflict},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.err), tc.err.Error())
	}
}

func Test_FromErr_HidesInternalDetail(t *testing.T) {
	got := FromErr(errors.New("dial tcp 10.0.0.1:3306: refused"))
	assert.Equal(t, CodeInternal, got.Error.Code)
	assert.Equal(t, "internal error", got.Error.Message)

	got = FromErr(ErrNotFound("item not found"))
	assert.Equal(t, CodeNotFound, got.Error.Code)
	assert.Equal(t, "item not found", got.Error.Message)
}

func Test_Page(t *testing.T) {
	p := Page{Limit: 0, Offset: -5, Order: "sideways"}.Normalize()
	assert.Equal(t, Page{Limit: DefaultLimit, Offset: 0, Order: "desc"}, p)
	assert.Equal(t, "DESC", p.SQLOrder())

	p = Page{Limit: 1000, Order: "asc"}.Normalize()
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, "ASC", p.SQLOrder())

	p = Page{Limit: 10, Offset: 10}
	next := p.NextOffset(10, 35)
	if assert.NotNil(t, next) {
		assert.Equal(t, 20, *next)
	}
	assert.Nil(t, p.NextOffset(5, 15))
	assert.Nil(t, p.NextOffset(0, 100))
}

func Test_ParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
	assert.Equal(t, 12, ParseIntDefault("12", 7))
}
