package cache

import (
	"fmt"
	"time"

	"mnestswap/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// RistrettoSessionCache keeps swap sessions in memory. Entries expire after
// ttl and are evicted once maxItems is reached; nothing survives a restart.
type RistrettoSessionCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewSessionCache(maxItems int64, ttl time.Duration) (*RistrettoSessionCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache failed: %w", err)
	}
	return &RistrettoSessionCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoSessionCache) Get(id uuid.UUID) (domain.Session, bool) {
	if v, ok := c.cache.Get(id.String()); ok {
		s, ok := v.(domain.Session)
		return s, ok
	}
	return domain.Session{}, false
}

// Set stores the session and waits until it is visible to Get.
func (c *RistrettoSessionCache) Set(session domain.Session) error {
	if !c.cache.SetWithTTL(session.ID.String(), session, 1, c.ttl) {
		return domain.ErrSessionRejected
	}
	c.cache.Wait()
	return nil
}

func (c *RistrettoSessionCache) Delete(id uuid.UUID) {
	c.cache.Del(id.String())
}

func (c *RistrettoSessionCache) Close() { c.cache.Close() }
