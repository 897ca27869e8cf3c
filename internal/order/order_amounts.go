package order

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// AmountStore remembers the amount a checkout session was opened with, so
// the payment callback can be checked against it exactly instead of being
// inferred from the order total. Best-effort: a failed Remember or Lookup
// degrades confirmation to the total-based check, it never blocks.
type AmountStore interface {
	Remember(ctx context.Context, orderID string, amount int64)
	Lookup(ctx context.Context, orderID string) (int64, bool)
}

const amountKeyPrefix = "checkout_amount:"

// sessions won't come back from the gateway redirect hours later
const amountTTL = time.Hour

type redisAmountStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisAmountStore(rdb *redis.Client, logger *zap.Logger) AmountStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisAmountStore{rdb: rdb, logger: logger}
}

func (s *redisAmountStore) Remember(ctx context.Context, orderID string, amount int64) {
	key := amountKeyPrefix + orderID
	if err := s.rdb.Set(ctx, key, amount, amountTTL).Err(); err != nil {
		s.logger.Warn("failed to record checkout amount",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}

func (s *redisAmountStore) Lookup(ctx context.Context, orderID string) (int64, bool) {
	raw, err := s.rdb.Get(ctx, amountKeyPrefix+orderID).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("failed to read checkout amount",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
		return 0, false
	}

	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

type memoryAmountStore struct {
	mu      sync.RWMutex
	amounts map[string]int64
}

func NewMemoryAmountStore() AmountStore {
	return &memoryAmountStore{amounts: make(map[string]int64)}
}

func (s *memoryAmountStore) Remember(ctx context.Context, orderID string, amount int64) {
	s.mu.Lock()
	s.amounts[orderID] = amount
	s.mu.Unlock()
}

func (s *memoryAmountStore) Lookup(ctx context.Context, orderID string) (int64, bool) {
	s.mu.RLock()
	amount, ok := s.amounts[orderID]
	s.mu.RUnlock()
	return amount, ok
}
