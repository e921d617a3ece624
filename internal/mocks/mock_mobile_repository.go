package mocks

import (
	"context"

	"ecommerce-auth/internal/data/entity"
	"ecommerce-auth/internal/data/repository"
)

var _ repository.MobileRepository = (*MockMobileRepository)(nil)

// MockMobileRepository implements repository.MobileRepository for testing
type MockMobileRepository struct {
	FindByNumberFunc           func(ctx context.Context, countryCode, number string) (*entity.Mobile, error)
	FindPrimaryByFormattedFunc func(ctx context.Context, formatted string) (*entity.Mobile, error)
}

func NewMockMobileRepository() *MockMobileRepository {
	return &MockMobileRepository{}
}

func (m *MockMobileRepository) FindByNumber(ctx context.Context, countryCode, number string) (*entity.Mobile, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, countryCode, number)
	}
	return nil, nil
}

func (m *MockMobileRepository) FindPrimaryByFormatted(ctx context.Context, formatted string) (*entity.Mobile, error) {
	if m.FindPrimaryByFormattedFunc != nil {
		return m.FindPrimaryByFormattedFunc(ctx, formatted)
	}
	return nil, nil
}
