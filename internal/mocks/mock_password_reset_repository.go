package mocks

import (
	"context"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"

	"github.com/google/uuid"
)

var _ repository.PasswordResetRepository = (*MockPasswordResetRepository)(nil)

// MockPasswordResetRepository implements repository.PasswordResetRepository for testing
type MockPasswordResetRepository struct {
	CreateFunc       func(ctx context.Context, reset *entity.PasswordReset) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*entity.PasswordReset, error)
	MarkVerifiedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	ConsumeFunc      func(ctx context.Context, reset *entity.PasswordReset, passwordHash string, at time.Time) error
}

func NewMockPasswordResetRepository() *MockPasswordResetRepository {
	return &MockPasswordResetRepository{}
}

func (m *MockPasswordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reset)
	}
	return nil
}

func (m *MockPasswordResetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PasswordReset, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPasswordResetRepository) MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, id, at)
	}
	return nil
}

func (m *MockPasswordResetRepository) Consume(ctx context.Context, reset *entity.PasswordReset, passwordHash string, at time.Time) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, reset, passwordHash, at)
	}
	reset.Used = true
	return nil
}
