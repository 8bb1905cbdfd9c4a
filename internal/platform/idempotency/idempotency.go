// Package idempotency replays the stored response of a mutating request that is
// retried with the same Idempotency-Key.
package idempotency

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"GotYourBack-backend/internal/platform/apierr"
	"GotYourBack-backend/internal/platform/auth"
)

const (
	HeaderKey    = "Idempotency-Key"
	HeaderReplay = "Idempotent-Replay"

	DefaultTTL = 24 * time.Hour
	// 処理中ロックの寿命。ハンドラが落ちてもこの時間で解放される
	lockTTL = 30 * time.Second

	maxKeyLen = 255
	pending   = "pending"
)

type stored struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter は本文を控えながらそのまま書き出す
type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Key builds the Redis key for one (user, method, path, key) tuple.
func Key(userID, method, path, key string) string {
	return fmt.Sprintf("idem:%s:%s:%s:%s", userID, method, path, key)
}

// Middleware returns a pass-through handler when rdb is nil.
func Middleware(rdb redis.Cmdable, ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderKey)
		if rdb == nil || key == "" || !mutating(c.Request.Method) {
			c.Next()
			return
		}
		if len(key) > maxKeyLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierr.Body(apierr.CodeInvalidArgument, "Idempotency-Key is too long"))
			return
		}

		ctx := c.Request.Context()
		rkey := Key(auth.UserID(c), c.Request.Method, c.Request.URL.Path, key)

		ok, err := rdb.SetNX(ctx, rkey, pending, lockTTL).Result()
		if err != nil {
			// Redis が落ちていても本処理は止めない
			log.Printf("[WARN] idempotency lock %s: %v", rkey, err)
			c.Next()
			return
		}
		if !ok {
			replay(c, rdb, rkey)
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		// クライアントが切断しても結果は残す
		saveCtx := context.WithoutCancel(ctx)
		status := w.Status()
		if !cacheable(status) {
			if err := rdb.Del(saveCtx, rkey).Err(); err != nil {
				log.Printf("[WARN] idempotency unlock %s: %v", rkey, err)
			}
			return
		}
		buf, err := json.Marshal(stored{Status: status, ContentType: w.Header().Get("Content-Type"), Body: w.buf.Bytes()})
		if err != nil {
			log.Printf("[WARN] idempotency encode %s: %v", rkey, err)
			return
		}
		if err := rdb.Set(saveCtx, rkey, buf, ttl).Err(); err != nil {
			log.Printf("[WARN] idempotency save %s: %v", rkey, err)
		}
	}
}

func replay(c *gin.Context, rdb redis.Cmdable, rkey string) {
	val, err := rdb.Get(c.Request.Context(), rkey).Bytes()
	// redis.Nil はロックが直前に消えた場合。同時実行とみなす
	if errors.Is(err, redis.Nil) || (err == nil && string(val) == pending) {
		c.AbortWithStatusJSON(http.StatusConflict, apierr.Body(apierr.CodeConflict, "a request with this Idempotency-Key is in progress"))
		return
	}
	if err != nil {
		log.Printf("[ERROR] idempotency read %s: %v", rkey, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, apierr.Body(apierr.CodeInternal, "idempotency lookup failed"))
		return
	}

	var s stored
	if err := json.Unmarshal(val, &s); err != nil {
		log.Printf("[ERROR] idempotency decode %s: %v", rkey, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, apierr.Body(apierr.CodeInternal, "idempotency lookup failed"))
		return
	}
	c.Header(HeaderReplay, "true")
	c.Data(s.Status, s.ContentType, s.Body)
	c.Abort()
}

// cacheable: 5xx と 409 は保存せず、同じキーでの再試行をハンドラに通す
func cacheable(status int) bool {
	return status < http.StatusInternalServerError && status != http.StatusConflict
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
