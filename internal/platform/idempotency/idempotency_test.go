package idempotency

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GotYourBack-backend/internal/platform/auth"
)

type harness struct {
	mr     *miniredis.Miniredis
	router *gin.Engine
	calls  int
	status int
}

func newHarness(t *testing.T, withRedis bool) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := &harness{status: http.StatusCreated}

	var rdb redis.Cmdable
	if withRedis {
		h.mr = miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: h.mr.Addr()})
		t.Cleanup(func() { client.Close() })
		rdb = client
	}

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(auth.CtxUserIDKey, c.GetHeader("X-User")); c.Next() })
	r.Use(Middleware(rdb, time.Hour))
	handler := func(c *gin.Context) {
		h.calls++
		c.JSON(h.status, gin.H{"call": h.calls})
	}
	r.POST("/requests", handler)
	r.GET("/requests", handler)
	h.router = r
	return h
}

func (h *harness) do(method, user, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/requests", nil)
	req.Header.Set("X-User", user)
	if key != "" {
		req.Header.Set(HeaderKey, key)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func Test_Replay(t *testing.T) {
	h := newHarness(t, true)

	first := h.do(http.MethodPost, "U1", "k1")
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(HeaderReplay))

	second := h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(HeaderReplay))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
	assert.Equal(t, 1, h.calls)

	// 利用者が違えば別キー
	h.do(http.MethodPost, "U2", "k1")
	assert.Equal(t, 2, h.calls)

	assert.True(t, h.mr.Exists(Key("U1", http.MethodPost, "/requests", "k1")))
	assert.Equal(t, time.Hour, h.mr.TTL(Key("U1", http.MethodPost, "/requests", "k1")))
}

func Test_ExpiresAfterTTL(t *testing.T) {
	h := newHarness(t, true)
	h.do(http.MethodPost, "U1", "k1")
	h.mr.FastForward(time.Hour + time.Second)

	w := h.do(http.MethodPost, "U1", "k1")
	assert.Empty(t, w.Header().Get(HeaderReplay))
	assert.Equal(t, 2, h.calls)
}

func Test_PassThrough(t *testing.T) {
	h := newHarness(t, true)

	h.do(http.MethodPost, "U1", "")
	h.do(http.MethodPost, "U1", "")
	assert.Equal(t, 2, h.calls)

	h.do(http.MethodGet, "U1", "k1")
	h.do(http.MethodGet, "U1", "k1")
	assert.Equal(t, 4, h.calls)

	nr := newHarness(t, false)
	nr.do(http.MethodPost, "U1", "k1")
	nr.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, 2, nr.calls)
}

func Test_ServerErrorIsNotCached(t *testing.T) {
	h := newHarness(t, true)
	h.status = http.StatusInternalServerError

	w := h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, h.mr.Exists(Key("U1", http.MethodPost, "/requests", "k1")))

	h.status = http.StatusCreated
	w = h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get(HeaderReplay))
	assert.Equal(t, 2, h.calls)
}

func Test_ClientErrorIsReplayed(t *testing.T) {
	h := newHarness(t, true)
	h.status = http.StatusBadRequest
	h.do(http.MethodPost, "U1", "k1")

	h.status = http.StatusCreated
	w := h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "true", w.Header().Get(HeaderReplay))
	assert.Equal(t, 1, h.calls)
}

func Test_ConflictIsRetryable(t *testing.T) {
	h := newHarness(t, true)
	h.status = http.StatusConflict

	w := h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, h.mr.Exists(Key("U1", http.MethodPost, "/requests", "k1")))

	// 再読み込み後の再試行は同じキーでハンドラまで届く
	h.status = http.StatusOK
	w = h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(HeaderReplay))
	assert.Equal(t, 2, h.calls)

	w = h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get(HeaderReplay))
	assert.Equal(t, 2, h.calls)
}

func Test_Cacheable(t *testing.T) {
	for status, want := range map[int]bool{
		http.StatusOK:                  true,
		http.StatusCreated:             true,
		http.StatusBadRequest:          true,
		http.StatusForbidden:           true,
		http.StatusNotFound:            true,
		http.StatusConflict:            false,
		http.StatusInternalServerError: false,
		http.StatusServiceUnavailable:  false,
	} {
		assert.Equal(t, want, cacheable(status), "status %d", status)
	}
}

func Test_InFlightDuplicate(t *testing.T) {
	h := newHarness(t, true)
	require.NoError(t, h.mr.Set(Key("U1", http.MethodPost, "/requests", "k1"), pending))

	w := h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)
	assert.Equal(t, 0, h.calls)
}

func Test_RedisDownFailsOpen(t *testing.T) {
	h := newHarness(t, true)
	h.mr.Close()

	w := h.do(http.MethodPost, "U1", "k1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, h.calls)
}

func Test_KeyTooLong(t *testing.T) {
	h := newHarness(t, true)
	w := h.do(http.MethodPost, "U1", fmt.Sprintf("%0300d", 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, h.calls)
}
