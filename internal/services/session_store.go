package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang-coffee-backend/internal/cart"
	"golang-coffee-backend/internal/pricing"
	"golang-coffee-backend/pkg/cache"
)

var ErrSessionNotFound = errors.New("cart session not found")

// CartSession is the per-user checkout state: the cart ledger contents plus
// the fulfillment mode and discount selection. Clearing the cart or changing
// the mode does not reset the discount selection.
type CartSession struct {
	Items    []cart.LineItem           `json:"items"`
	Mode     pricing.FulfillmentMode   `json:"mode"`
	Discount pricing.DiscountSelection `json:"discount"`
}

func newCartSession() *CartSession {
	return &CartSession{
		Mode:     pricing.ModeDelivery,
		Discount: pricing.NoDiscount(),
	}
}

// SessionStore persists cart sessions between requests, keyed by user ID.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*CartSession, error)
	Save(ctx context.Context, userID string, session *CartSession) error
	Delete(ctx context.Context, userID string) error
}

// redisSessionStore keeps sessions in Redis so a cart survives across
// requests for the lifetime of the session TTL.
type redisSessionStore struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

func NewRedisSessionStore(cache *cache.RedisCache, ttl time.Duration) SessionStore {
	return &redisSessionStore{cache: cache, ttl: ttl}
}

func (s *redisSessionStore) key(userID string) string {
	return "cart_session:" + userID
}

func (s *redisSessionStore) Get(ctx context.Context, userID string) (*CartSession, error) {
	var session CartSession
	if err := s.cache.Get(ctx, s.key(userID), &session); err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *redisSessionStore) Save(ctx context.Context, userID string, session *CartSession) error {
	return s.cache.Set(ctx, s.key(userID), session, s.ttl)
}

func (s *redisSessionStore) Delete(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, s.key(userID))
}

// memorySessionStore is an in-process fallback used in tests and when Redis
// is unavailable.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*CartSession
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]*CartSession)}
}

func (s *memorySessionStore) Get(ctx context.Context, userID string) (*CartSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	copied.Items = append([]cart.LineItem(nil), session.Items...)
	return &copied, nil
}

func (s *memorySessionStore) Save(ctx context.Context, userID string, session *CartSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	copied.Items = append([]cart.LineItem(nil), session.Items...)
	s.sessions[userID] = &copied
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
