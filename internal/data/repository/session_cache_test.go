package repository

import (
	"context"
	"testing"
	"time"

	"ecommerce-auth/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionRepository struct {
	sessions map[uuid.UUID]*entity.AuthSession
	finds    int
}

func (s *stubSessionRepository) Create(_ context.Context, session *entity.AuthSession) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	s.finds++
	return s.sessions[id], nil
}

func setupCache(t *testing.T) (*miniredis.Miniredis, *stubSessionRepository, SessionRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	stub := &stubSessionRepository{sessions: map[uuid.UUID]*entity.AuthSession{}}
	return mr, stub, NewCachedSessionRepository(stub, client, zap.NewNop())
}

func newSession(expiresIn time.Duration) *entity.AuthSession {
	now := time.Now().UTC().Truncate(time.Second)
	return &entity.AuthSession{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		AccountID:  uuid.New(),
		ExpiresAt:  now.Add(expiresIn),
	}
}

func TestCachedSessionRepository_CreateCachesUntilExpiry(t *testing.T) {
	mr, stub, repo := setupCache(t)
	session := newSession(time.Hour)

	require.NoError(t, repo.Create(context.Background(), session))

	key := sessionKeyPrefix + session.ID.String()
	assert.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.True(t, ttl > 0 && ttl <= time.Hour, "ttl %s", ttl)

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.AccountID, found.AccountID)
	assert.True(t, session.ExpiresAt.Equal(found.ExpiresAt))
	assert.Equal(t, 0, stub.finds, "cache hit should not reach the database")
}

func TestCachedSessionRepository_MissFillsCache(t *testing.T) {
	mr, stub, repo := setupCache(t)
	session := newSession(time.Hour)
	stub.sessions[session.ID] = session

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 1, stub.finds)
	assert.True(t, mr.Exists(sessionKeyPrefix+session.ID.String()))

	_, err = repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.finds)
}

func TestCachedSessionRepository_ExpiredNotCached(t *testing.T) {
	mr, stub, repo := setupCache(t)
	session := newSession(-time.Minute)
	stub.sessions[session.ID] = session

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, mr.Exists(sessionKeyPrefix+session.ID.String()))
}

func TestCachedSessionRepository_UnknownSession(t *testing.T) {
	_, _, repo := setupCache(t)

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCachedSessionRepository_FallsBackWhenRedisDown(t *testing.T) {
	mr, stub, repo := setupCache(t)
	session := newSession(time.Hour)
	stub.sessions[session.ID] = session
	mr.Close()

	found, err := repo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.ID, found.ID)
}
