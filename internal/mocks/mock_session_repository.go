package mocks

import (
	"context"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"

	"github.com/google/uuid"
)

var _ repository.SessionRepository = (*MockSessionRepository)(nil)

// MockSessionRepository implements repository.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *entity.AuthSession) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error)
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.AuthSession) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthSession, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}
