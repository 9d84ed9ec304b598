package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"debateapp/internal/models"

	"github.com/redis/go-redis/v9"
)

const debatesKey = "debates:all"

// DebatesTTL matches the client's comment poll cadence so a cached listing
// is never staler than one poll interval.
const DebatesTTL = 5 * time.Second

// Debates is a small typed wrapper over a Redis client for the debate list.
// A nil receiver or nil client disables every operation.
type Debates struct {
	rdb *redis.Client
}

// NewDebates creates a debate-list cache over rdb, which may be nil.
func NewDebates(rdb *redis.Client) *Debates {
	return &Debates{rdb: rdb}
}

// Get returns the cached debate list, or ok=false on miss, disabled cache
// or any Redis error.
func (d *Debates) Get(ctx context.Context) ([]models.Debate, bool) {
	if d == nil || d.rdb == nil {
		return nil, false
	}
	payload, err := d.rdb.Get(ctx, debatesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var debates []models.Debate
	if err := json.Unmarshal(payload, &debates); err != nil {
		// Corrupt entry; drop it so the next listing repopulates.
		d.rdb.Del(ctx, debatesKey)
		return nil, false
	}
	return debates, true
}

// Set stores the debate list. Errors are swallowed; the cache is best effort.
func (d *Debates) Set(ctx context.Context, debates []models.Debate) {
	if d == nil || d.rdb == nil {
		return
	}
	payload, err := json.Marshal(debates)
	if err != nil {
		return
	}
	d.rdb.Set(ctx, debatesKey, payload, DebatesTTL)
}

// Invalidate drops the cached debate list. Called by every mutating debate
// operation.
func (d *Debates) Invalidate(ctx context.Context) {
	if d == nil || d.rdb == nil {
		return
	}
	if err := d.rdb.Del(ctx, debatesKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return
	}
}
