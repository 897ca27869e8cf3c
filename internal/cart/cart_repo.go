package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_store_mock.go -package=mock

// Store persists one cart State per owner under a string key. It mirrors
// the browser local-storage contract: Load never fails (any miss, decode
// error or backend error yields the canonical empty state) and Save is
// best-effort (failures are logged and swallowed; the in-memory state has
// already committed).
type Store interface {
	Load(ctx context.Context, ownerID string) State
	Save(ctx context.Context, ownerID string, state State)
}

// ========================
// redis store
// ========================

type redisStore struct {
	rdb       *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

func NewRedisStore(rdb *redis.Client, keyPrefix string, ttl time.Duration, logger *zap.Logger) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisStore{
		rdb:       rdb,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
	}
}

func (s *redisStore) key(ownerID string) string {
	return s.keyPrefix + ":" + ownerID
}

func (s *redisStore) Load(ctx context.Context, ownerID string) State {
	raw, err := s.rdb.Get(ctx, s.key(ownerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("failed to read cart, falling back to empty state",
				zap.String("owner_id", ownerID),
				zap.Error(err),
			)
		}
		return EmptyState()
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		s.logger.Warn("corrupt cart payload, falling back to empty state",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return EmptyState()
	}
	if state.Items == nil {
		state.Items = []LineItem{}
	}
	return state
}

func (s *redisStore) Save(ctx context.Context, ownerID string, state State) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Error("failed to serialize cart", zap.String("owner_id", ownerID), zap.Error(err))
		return
	}

	if err := s.rdb.Set(ctx, s.key(ownerID), raw, s.ttl).Err(); err != nil {
		// cart stays usable in-memory for the session even if persistence is broken
		s.logger.Error("failed to persist cart", zap.String("owner_id", ownerID), zap.Error(err))
	}
}

// ========================
// memory store
// ========================

// memoryStore backs tests and the degraded mode used when Redis is
// unreachable at startup. Same last-write-wins semantics, no TTL.
type memoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string][]byte)}
}

func (s *memoryStore) Load(ctx context.Context, ownerID string) State {
	s.mu.RLock()
	raw, ok := s.carts[ownerID]
	s.mu.RUnlock()
	if !ok {
		return EmptyState()
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return EmptyState()
	}
	if state.Items == nil {
		state.Items = []LineItem{}
	}
	return state
}

func (s *memoryStore) Save(ctx context.Context, ownerID string, state State) {
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.carts[ownerID] = raw
	s.mu.Unlock()
}
