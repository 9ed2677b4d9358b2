package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"admissions-portal/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}
