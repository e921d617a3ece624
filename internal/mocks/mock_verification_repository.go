package mocks

import (
	"context"
	"time"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"

	"github.com/google/uuid"
)

var _ repository.VerificationRepository = (*MockVerificationRepository)(nil)

// MockVerificationRepository implements repository.VerificationRepository for testing
type MockVerificationRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.AccountVerification, error)
	CompleteFunc func(ctx context.Context, v *entity.AccountVerification, at time.Time) error
}

func NewMockVerificationRepository() *MockVerificationRepository {
	return &MockVerificationRepository{}
}

func (m *MockVerificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountVerification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVerificationRepository) Complete(ctx context.Context, v *entity.AccountVerification, at time.Time) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, v, at)
	}
	v.ConsumedAt = &at
	return nil
}
