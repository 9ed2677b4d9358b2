package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"admissions-portal/internal/domain"
)

type DirectoryRepository struct {
	mock.Mock
}

func (m *DirectoryRepository) GetSchoolByID(ctx context.Context, id string) (*domain.School, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.School), args.Error(1)
}

func (m *DirectoryRepository) GetClassByID(ctx context.Context, id string) (*domain.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *DirectoryRepository) ListSchools(ctx context.Context) ([]domain.School, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.School), args.Error(1)
}

func (m *DirectoryRepository) ListClassesBySchool(ctx context.Context, schoolID string) ([]domain.Class, error) {
	args := m.Called(ctx, schoolID)
	return args.Get(0).([]domain.Class), args.Error(1)
}
