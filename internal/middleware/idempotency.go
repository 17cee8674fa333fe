package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"leavedesk/internal/shared/response"
)

// Idempotency shields submission endpoints from double-clicks and browser
// resubmits. When a POST carries an Idempotency-Key, the first completed
// response is replayed to any retry; a retry arriving while the first
// request is still in flight gets a 409 instead of a second upstream call.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		sess, _ := SessionFromGin(c)
		cacheKey := fmt.Sprintf("ldidemp:%s:%s:%s", c.FullPath(), sess.EmployeeID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var rec idempotentRecord
			if json.Unmarshal([]byte(val), &rec) == nil && rec.Status != 0 {
				var data any
				_ = json.Unmarshal(rec.Payload, &data)
				c.AbortWithStatusJSON(rec.Status, response.ApiEnvelope{Ok: true, Data: data})
				return
			}
		}

		// SetNX expires on its own so a crashed request cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Your request is still being processed, please wait",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// idempotentRecord is what a completed submission leaves behind: the
// replay repeats the original status code and data verbatim.
type idempotentRecord struct {
	Status  int             `json:"status"`
	Payload json.RawMessage `json:"payload"`
}

// StoreIdempotentResult records a successful submission's status and
// payload for replay and releases the in-flight lock. Handlers call it
// after the upstream confirms.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, status int, payload any) {
	cacheKey, _ := c.Get("idempotency_cache_key")
	lockKey, _ := c.Get("idempotency_lock_key")

	ck, okCache := cacheKey.(string)
	lk, okLock := lockKey.(string)
	if !okCache || ck == "" {
		return
	}

	if body, err := json.Marshal(payload); err == nil {
		if raw, err := json.Marshal(idempotentRecord{Status: status, Payload: body}); err == nil {
			rdb.Set(c.Request.Context(), ck, raw, 24*time.Hour)
		}
	}
	if okLock && lk != "" {
		rdb.Del(c.Request.Context(), lk)
	}
}
