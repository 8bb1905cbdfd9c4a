package requests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/platform/auth"
)

func newRouter(f *fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// テストでは X-User で呼び出し元を切り替える
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserIDKey, c.GetHeader("X-User"))
		c.Next()
	})
	RegisterRoutes(r, f.svc)
	return r
}

func call(r *gin.Engine, user, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User", user)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) RequestResponse {
	t.Helper()
	var out RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func Test_Handler_LendFlow(t *testing.T) {
	f := newFixture()
	r := newRouter(f)

	w := call(r, requester, http.MethodPost, "/requests", `{"item_id":"LEND1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	base := "/requests/" + created.RequestID
	assert.Equal(t, base, w.Header().Get("Location"))

	steps := []struct {
		user, path, body string
		status           lifecycle.RequestStatus
	}{
		{owner, base + "/decision", `{"decision":"ACCEPTED"}`, lifecycle.StatusAccepted},
		{owner, base + "/lent", "", lifecycle.StatusAccepted},
		{requester, base + "/receipt", "", lifecycle.StatusAccepted},
		{owner, base + "/done", "", lifecycle.StatusDone},
		{requester, base + "/return", "", lifecycle.StatusDone},
		{owner, base + "/return", `{"as_borrower":false}`, lifecycle.StatusDone},
	}
	for _, s := range steps {
		w := call(r, s.user, http.MethodPut, s.path, s.body)
		require.Equal(t, http.StatusOK, w.Code, "%s: %s", s.path, w.Body.String())
		assert.Equal(t, s.status, decode(t, w).Status)
	}

	w = call(r, owner, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, lifecycle.ItemAvailable, got.ItemStatus)
}

func Test_Handler_ErrorMapping(t *testing.T) {
	f := newFixture()
	r := newRouter(f)

	w := call(r, owner, http.MethodPost, "/requests", `{"item_id":"LEND1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"FORBIDDEN"`)

	w = call(r, requester, http.MethodPost, "/requests", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, requester, http.MethodPost, "/requests", `{"item_id":"LEND1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w).RequestID

	w = call(r, requester, http.MethodPost, "/requests", `{"item_id":"LEND1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(r, requester, http.MethodPut, "/requests/"+id+"/decision", `{"decision":"ACCEPTED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(r, owner, http.MethodPut, "/requests/"+id+"/decision", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, owner, http.MethodPut, "/requests/"+id+"/lent", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)

	w = call(r, stranger, http.MethodGet, "/requests/"+id, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = call(r, owner, http.MethodGet, "/requests/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, owner, http.MethodPut, "/requests/"+id+"/return", `{"as_borrower":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_Handler_List(t *testing.T) {
	f := newFixture()
	r := newRouter(f)

	require.Equal(t, http.StatusCreated, call(r, requester, http.MethodPost, "/requests", `{"item_id":"LEND1"}`).Code)
	require.Equal(t, http.StatusCreated, call(r, stranger, http.MethodPost, "/requests", `{"item_id":"SELL1"}`).Code)

	w := call(r, owner, http.MethodGet, "/requests?role=received&limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.EqualValues(t, 2, res.Total)

	w = call(r, requester, http.MethodGet, "/requests?role=sent&active_only=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "LEND1", res.Items[0].ItemID)

	w = call(r, requester, http.MethodGet, "/requests?role=everyone", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, requester, http.MethodGet, "/requests?active_only=maybe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "active_only")
}

func Test_Handler_ConfirmReturn_ChunkedEmptyBody(t *testing.T) {
	f := newFixture()
	r := newRouter(f)

	w := call(r, requester, http.MethodPost, "/requests", `{"item_id":"LEND1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/requests/" + decode(t, w).RequestID
	for _, s := range []struct{ user, path, body string }{
		{owner, base + "/decision", `{"decision":"ACCEPTED"}`},
		{owner, base + "/lent", ""},
		{requester, base + "/receipt", ""},
		{owner, base + "/done", ""},
	} {
		require.Equal(t, http.StatusOK, call(r, s.user, http.MethodPut, s.path, s.body).Code, s.path)
	}

	// 長さ不明（Transfer-Encoding: chunked 相当）の空ボディ
	req := httptest.NewRequest(http.MethodPut, base+"/return", io.NopCloser(strings.NewReader("")))
	require.EqualValues(t, -1, req.ContentLength)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", requester)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	assert.True(t, got.BorrowerConfirmedReturn)
	assert.False(t, got.LenderConfirmedReturn)
}
