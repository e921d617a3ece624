package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseStamps(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	id := uuid.New()
	base := NewBase(id, now)
	assert.Equal(t, id, base.ID)
	assert.Equal(t, now, base.CreatedAt)
	assert.Equal(t, now, base.UpdatedAt)
	assert.Nil(t, base.DeletedAt)

	noDelete := NewBaseNoDelete(now)
	assert.NotEqual(t, uuid.Nil, noDelete.ID)
	assert.Equal(t, now, noDelete.UpdatedAt)

	first, second := NewBaseSimple(now), NewBaseSimple(now)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, now, first.CreatedAt)
}

func TestExpiry(t *testing.T) {
	now := time.Now()

	session := &AuthSession{ExpiresAt: now}
	assert.True(t, session.IsExpired(now))
	assert.False(t, session.IsExpired(now.Add(-time.Second)))

	verification := &AccountVerification{ValidTill: now.Add(time.Minute)}
	assert.False(t, verification.IsExpired(now))
	assert.False(t, verification.IsConsumed())
}
