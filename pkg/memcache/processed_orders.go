package memcache

import (
	"sync"
	"time"
)

// ProcessedOrders remembers recently handled payment order codes so webhook
// retries from the provider are acknowledged without re-granting access.
// Entries expire after their TTL; the store is process-local, which is fine
// because the database status check is the durable idempotency guard.
type ProcessedOrders struct {
	mu   sync.Mutex
	data map[int64]time.Time
}

func NewProcessedOrders() *ProcessedOrders {
	return &ProcessedOrders{
		data: make(map[int64]time.Time),
	}
}

func (s *ProcessedOrders) MarkProcessed(orderCode int64, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[orderCode] = time.Now().Add(ttl)
}

func (s *ProcessedOrders) Seen(orderCode int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.data[orderCode]
	if !ok {
		return false
	}
	if time.Now().After(expires) {
		delete(s.data, orderCode)
		return false
	}
	return true
}
