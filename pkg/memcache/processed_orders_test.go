package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcessedOrdersRemembersWithinTTL(t *testing.T) {
	store := NewProcessedOrders()

	assert.False(t, store.Seen(42))

	store.MarkProcessed(42, time.Minute)

	assert.True(t, store.Seen(42))
	assert.False(t, store.Seen(43))
}

func TestProcessedOrdersExpires(t *testing.T) {
	store := NewProcessedOrders()
	store.MarkProcessed(42, -time.Second)

	assert.False(t, store.Seen(42))
}
