package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ecommerce-auth/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// cachedSessionRepository reads sessions from Redis before Postgres.
// Redis failures are logged and fall back to the wrapped repository.
type cachedSessionRepository struct {
	next   SessionRepository
	client *redis.Client
	log    *zap.Logger
	now    func() time.Time
}

func NewCachedSessionRepository(next SessionRepository, client *redis.Client, log *zap.Logger) SessionRepository {
	return &cachedSessionRepository{
		next:   next,
		client: client,
		log:    log.With(zap.String("repository", "session_cache")),
		now:    time.Now,
	}
}

func (r *cachedSessionRepository) Create(ctx context.Context, session *entity.AuthSession) error {
	if err := r.next.Create(ctx, session); err != nil {
		return err
	}
	r.store(ctx, session)
	return nil
}

func (r *cachedSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	key := sessionKeyPrefix + id.String()

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var session entity.AuthSession
		if err := json.Unmarshal(data, &session); err == nil {
			return &session, nil
		}
		r.log.Warn("Dropping unreadable cached session", zap.String("session_id", id.String()))
		r.client.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		r.log.Warn("Session cache unavailable", zap.Error(err))
	}

	session, err := r.next.FindByID(ctx, id)
	if err != nil || session == nil {
		return session, err
	}

	r.store(ctx, session)
	return session, nil
}

// store caches the session until it expires; expired sessions are not cached.
func (r *cachedSessionRepository) store(ctx context.Context, session *entity.AuthSession) {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(session)
	if err != nil {
		r.log.Warn("Failed to encode session for cache", zap.Error(err))
		return
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID.String(), data, ttl).Err(); err != nil {
		r.log.Warn("Failed to cache session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
	}
}
