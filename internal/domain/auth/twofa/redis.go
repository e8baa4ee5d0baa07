package twofa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

const defaultKeyPrefix = "two_fa_code:"

// challengeRecord is the serialized form kept in the backend.
type challengeRecord struct {
	AttemptID string `json:"attempt_id"`
	Code      string `json:"code"`
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedis constructs a redis-backed challenge store. Expiry rides on the
// backend's key TTL, so a stored challenge simply vanishes when stale.
func NewRedis(cfg Config) (Store, error) {
	if cfg.Redis == nil {
		return nil, fmt.Errorf("redis configuration missing")
	}
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("redis address required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Redis.Prefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = ChallengeTTL
	}
	return &redisStore{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}, nil
}

func (s *redisStore) key(email model.Email) string {
	return s.prefix + email.Raw()
}

func (s *redisStore) Add(ctx context.Context, email model.Email, challenge Challenge) error {
	payload, err := json.Marshal(challengeRecord{
		AttemptID: challenge.AttemptID.Raw(),
		Code:      challenge.Code.Raw(),
	})
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}
	if err := s.client.Set(ctx, s.key(email), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, email model.Email) (Challenge, error) {
	payload, err := s.client.Get(ctx, s.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return Challenge{}, ErrCodeNotFound
	}
	if err != nil {
		return Challenge{}, fmt.Errorf("fetch challenge: %w", err)
	}

	var record challengeRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return Challenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	attemptID, err := model.ParseLoginAttemptID(record.AttemptID)
	if err != nil {
		return Challenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	code, err := model.ParseTwoFACode(record.Code)
	if err != nil {
		return Challenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	return Challenge{AttemptID: attemptID, Code: code}, nil
}

func (s *redisStore) Remove(ctx context.Context, email model.Email) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("remove challenge: %w", err)
	}
	return nil
}

func (s *redisStore) Close(context.Context) error {
	return s.client.Close()
}
