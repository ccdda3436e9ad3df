package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// taskTTL bounds staleness if an invalidation is ever missed.
const taskTTL = 5 * time.Minute

// TaskCache keeps each user's task list in Redis so the dashboard's repeated
// fetches skip the join query. Writers invalidate after insert and complete;
// there is no automatic re-fetch. Without Redis every call is a miss and the
// application behaves as if the cache did not exist.
type TaskCache struct {
	rdb *redis.Client
}

// NewTaskCache connects to Redis at addr. An empty addr or a failed ping
// yields a disabled cache rather than an error.
func NewTaskCache(addr, password string, db int) *TaskCache {
	if addr == "" {
		return &TaskCache{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("task cache disabled, redis unreachable", "error", err)
		return &TaskCache{}
	}

	return &TaskCache{rdb: rdb}
}

func key(userID int64) string {
	return "tasks:" + strconv.FormatInt(userID, 10)
}

// Get returns the cached list for the user, or ok=false on miss, disabled
// cache, or any Redis error.
func (c *TaskCache) Get(ctx context.Context, userID int64) ([]domain.Task, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		return nil, false
	}

	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		// stale or corrupt entry; drop it
		c.rdb.Del(ctx, key(userID))
		return nil, false
	}
	return tasks, true
}

// Set stores the list. Failures are ignored; the next read falls through to
// the store.
func (c *TaskCache) Set(ctx context.Context, userID int64, tasks []domain.Task) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(userID), raw, taskTTL).Err(); err != nil {
		logger.Debug("task cache set failed", "user_id", userID, "error", err)
	}
}

// Invalidate drops the user's entry after a write.
func (c *TaskCache) Invalidate(ctx context.Context, userID int64) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(userID)).Err(); err != nil {
		logger.Debug("task cache invalidate failed", "user_id", userID, "error", err)
	}
}
