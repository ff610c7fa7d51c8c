package shortlink

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	shortlinkRepository "songart/internal/domain/repository/shortlink"
)

type Config struct {
	URI     string
	Timeout int64 `yaml:"timeout_in_ms"`
}

// Store keeps short-link documents in redis. Documents are permanent: no
// TTL is set, there is no update or delete path.
type Store struct {
	redis   *redis.Client
	timeout time.Duration
}

func NewStore(cfg Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		redis:   rdb,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

// Create writes value only when key is absent, so two concurrent creations
// of the same ID cannot both succeed.
func (s *Store) Create(ctx context.Context, key string, value []byte) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.redis.SetNX(ctx, key, value, 0).Result()
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.redis.Set(ctx, key, value, 0).Err()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	val, err := s.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shortlinkRepository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return val, nil
}

func (s *Store) Close() error {
	return s.redis.Close()
}
