package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "booking:draft:"

// RedisStore keeps drafts in Redis so an abandoned browser session can
// resume later. Each draft lives under its own key with a TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("store", "draft")),
	}
}

func draftKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *RedisStore) Load(ctx context.Context, id uuid.UUID) (*entity.BookingDraft, error) {
	raw, err := s.rdb.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.log.Error("Failed to load draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return nil, fmt.Errorf("load draft %s: %w", id.String(), err)
	}

	var d entity.BookingDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		s.log.Error("Failed to decode draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return nil, fmt.Errorf("decode draft %s: %w", id.String(), err)
	}

	return &d, nil
}

func (s *RedisStore) Save(ctx context.Context, id uuid.UUID, d *entity.BookingDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", id.String(), err)
	}

	if err := s.rdb.Set(ctx, draftKey(id), raw, s.ttl).Err(); err != nil {
		s.log.Error("Failed to save draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return fmt.Errorf("save draft %s: %w", id.String(), err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id uuid.UUID) error {
	if err := s.rdb.Del(ctx, draftKey(id)).Err(); err != nil {
		s.log.Error("Failed to clear draft",
			zap.Error(err),
			zap.String("draft_id", id.String()),
		)
		return fmt.Errorf("clear draft %s: %w", id.String(), err)
	}
	return nil
}
