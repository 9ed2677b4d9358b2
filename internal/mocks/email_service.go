package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"admissions-portal/internal/domain"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendDecisionEmail(ctx context.Context, toEmail, applicantName string, status domain.ApplicationStatus, reason string) error {
	args := m.Called(ctx, toEmail, applicantName, status, reason)
	return args.Error(0)
}

func (m *EmailService) SendMissingDocumentEmail(ctx context.Context, toEmail, applicantName, missing string) error {
	args := m.Called(ctx, toEmail, applicantName, missing)
	return args.Error(0)
}
