package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SesionStore remembers revoked session token ids until they would have
// expired anyway.
type SesionStore interface {
	Revocar(ctx context.Context, jti string, ttl time.Duration) error
	Revocada(ctx context.Context, jti string) (bool, error)
}

const revokedPrefix = "kiosco:sesion:revocada:"

type redisSesionStore struct{ rdb *redis.Client }

// NewSesionStore returns a Redis-backed store when rdb is set, otherwise a
// process-local one.
func NewSesionStore(rdb *redis.Client) SesionStore {
	if rdb == nil {
		return NewMemorySesionStore()
	}
	return &redisSesionStore{rdb: rdb}
}

func (s *redisSesionStore) Revocar(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

func (s *redisSesionStore) Revocada(ctx context.Context, jti string) (bool, error) {
	err := s.rdb.Get(ctx, revokedPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type memorySesionStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemorySesionStore() SesionStore {
	return &memorySesionStore{expires: make(map[string]time.Time), now: time.Now}
}

func (s *memorySesionStore) Revocar(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.expires {
		if now.After(exp) {
			delete(s.expires, k)
		}
	}
	s.expires[jti] = now.Add(ttl)
	return nil
}

func (s *memorySesionStore) Revocada(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.expires[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(exp) {
		delete(s.expires, jti)
		return false, nil
	}
	return true, nil
}
