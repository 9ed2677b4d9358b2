package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ExportService struct {
	mock.Mock
}

func (m *ExportService) GenerateForClass(ctx context.Context, classID string) (string, error) {
	args := m.Called(ctx, classID)
	return args.String(0), args.Error(1)
}

func (m *ExportService) GenerateForSchool(ctx context.Context, schoolID string) (string, error) {
	args := m.Called(ctx, schoolID)
	return args.String(0), args.Error(1)
}

func (m *ExportService) GenerateAll(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
