package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"
)

// CachedDocument is what a guarded generate handler stores for replay. The
// generate endpoints stream PDF bytes rather than a JSON envelope, so the
// cache keeps the raw body alongside its content type and filename.
type CachedDocument struct {
	ContentType string `json:"content_type"`
	FileName    string `json:"file_name,omitempty"`
	Body        []byte `json:"body"`
}

// Idempotency guards mutating POSTs carrying an Idempotency-Key header. A
// replay returns the cached envelope; a concurrent duplicate is rejected
// while the first request still holds the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		actorID := ""
		if id, ok := access.IdentityFrom(c); ok {
			actorID = id.ActorID
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), actorID, idempKey)
		lockKey := cacheKey + ":lock"

		// 1. Check the cache first
		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var doc CachedDocument
			if json.Unmarshal([]byte(val), &doc) == nil && len(doc.Body) > 0 {
				if doc.FileName != "" {
					c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
				}
				c.Data(http.StatusOK, doc.ContentType, doc.Body)
				c.Abort()
				return
			}
			var cached any
			_ = json.Unmarshal([]byte(val), &cached)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"success": true, "data": cached})
			return
		}

		// 2. Atomic lock (SetNX). Short expiry so the lock clears itself
		// if the server crashes.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Your request is still being processed, please wait.",
			})
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
