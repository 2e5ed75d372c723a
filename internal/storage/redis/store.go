package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
)

const opTimeout = 5 * time.Second

// Store keeps each key as a plain redis string under a namespace prefix.
type Store struct {
	url    string
	prefix string
	rdb    *redis.Client
}

// IsURL reports whether connStr selects the redis backend.
func IsURL(connStr string) bool {
	return strings.HasPrefix(connStr, "redis://") || strings.HasPrefix(connStr, "rediss://")
}

func New(url string) *Store {
	return &Store{
		url:    url,
		prefix: constants.RedisKeyPrefix,
	}
}

// WithPrefix overrides the key namespace, mainly for tests sharing a server.
func (s *Store) WithPrefix(prefix string) *Store {
	s.prefix = prefix
	return s
}

func (s *Store) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

func (s *Store) connect() error {
	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("invalid redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := s.ctx()
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	s.rdb = rdb
	return nil
}

func (s *Store) Init() error {
	if s.rdb != nil {
		return nil
	}
	return s.connect()
}

func (s *Store) Load() error {
	return s.Init()
}

func (s *Store) Close() error {
	if s.rdb != nil {
		err := s.rdb.Close()
		s.rdb = nil
		return err
	}
	return nil
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.rdb == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	ctx, cancel := s.ctx()
	defer cancel()

	v, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (s *Store) Set(key string, value []byte) error {
	if s.rdb == nil {
		return fmt.Errorf("storage not loaded")
	}

	ctx, cancel := s.ctx()
	defer cancel()

	return s.rdb.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Delete(keys ...string) error {
	if s.rdb == nil {
		return fmt.Errorf("storage not loaded")
	}
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}

	ctx, cancel := s.ctx()
	defer cancel()

	return s.rdb.Del(ctx, full...).Err()
}

func (s *Store) GetConfigPath() string {
	return "redis"
}
