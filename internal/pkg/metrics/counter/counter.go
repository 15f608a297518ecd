package counter

import (
	"context"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	checkoutsKey   = "quote:counters:checkouts"
	fieldCount     = "count"
	fieldPremiumCt = "premium_cents"
)

// CheckoutStats summarizes completed mock payments.
type CheckoutStats struct {
	Count   int64   `json:"checkouts"`
	Premium float64 `json:"checkoutPremium"`
}

// Recorder counts completed checkouts.
type Recorder interface {
	AddCheckout(ctx context.Context, premium float64) error
	Stats(ctx context.Context) (CheckoutStats, error)
}

// RedisRecorder keeps the counters in a Redis hash so they survive restarts
// and are shared between instances.
type RedisRecorder struct {
	client *redis.Client
}

func NewRedisRecorder(client *redis.Client) *RedisRecorder {
	return &RedisRecorder{client: client}
}

// AddCheckout increments the checkout count and premium sum in one round trip.
// The premium is stored in cents to keep the sum exact.
func (r *RedisRecorder) AddCheckout(ctx context.Context, premium float64) error {
	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, checkoutsKey, fieldCount, 1)
	pipe.HIncrBy(ctx, checkoutsKey, fieldPremiumCt, toCents(premium))
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisRecorder) Stats(ctx context.Context) (CheckoutStats, error) {
	data, err := r.client.HGetAll(ctx, checkoutsKey).Result()
	if err != nil {
		return CheckoutStats{}, err
	}
	count, _ := strconv.ParseInt(data[fieldCount], 10, 64)
	cents, _ := strconv.ParseInt(data[fieldPremiumCt], 10, 64)
	return CheckoutStats{Count: count, Premium: float64(cents) / 100}, nil
}

// MemoryRecorder is the in-process Recorder used without a cache server.
type MemoryRecorder struct {
	mu    sync.Mutex
	count int64
	cents int64
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (m *MemoryRecorder) AddCheckout(_ context.Context, premium float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	m.cents += toCents(premium)
	return nil
}

func (m *MemoryRecorder) Stats(_ context.Context) (CheckoutStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return CheckoutStats{Count: m.count, Premium: float64(m.cents) / 100}, nil
}

func toCents(v float64) int64 {
	if v < 0 {
		return int64(v*100 - 0.5)
	}
	return int64(v*100 + 0.5)
}
