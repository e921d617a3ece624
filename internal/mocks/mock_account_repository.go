package mocks

import (
	"context"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"

	"github.com/google/uuid"
)

var _ repository.AccountRepository = (*MockAccountRepository)(nil)

// MockAccountRepository implements repository.AccountRepository for testing
type MockAccountRepository struct {
	SignupFunc      func(ctx context.Context, records repository.SignupRecords) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindProfileFunc func(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Signup(ctx context.Context, records repository.SignupRecords) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, records)
	}
	return nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, nil
}

func (m *MockAccountRepository) FindProfile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	if m.FindProfileFunc != nil {
		return m.FindProfileFunc(ctx, accountID)
	}
	return nil, nil
}
