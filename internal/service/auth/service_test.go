package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"admissions-portal/internal/config"
	"admissions-portal/internal/domain"
	"admissions-portal/internal/mocks"
	"admissions-portal/internal/service/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           "agent-1",
		Email:        "agent@example.com",
		PasswordHash: string(hash),
		FullName:     "Aminata Sarr",
		Role:         domain.RoleAgent,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := auth.NewService(userRepo, testConfig())
	stored := testUser(t, "correct-horse")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(stored, nil)

	user, tokens, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "agent@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "agent-1", user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", claims.UserID)
	assert.Equal(t, domain.RoleAgent, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := auth.NewService(userRepo, testConfig())

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(testUser(t, "correct-horse"), nil)

	_, _, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "agent@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := auth.NewService(userRepo, testConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "nobody@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), testConfig())

	_, err := svc.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	issuer := auth.NewService(userRepo, testConfig())
	stored := testUser(t, "correct-horse")

	userRepo.On("GetByEmail", mock.Anything, "agent@example.com").Return(stored, nil)

	_, tokens, err := issuer.Login(context.Background(), domain.LoginInput{
		Email:    "agent@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	verifier := auth.NewService(userRepo, &config.Config{
		JWTSecret:       "other-secret",
		JWTAccessExpiry: time.Hour,
	})
	_, err = verifier.ValidateAccessToken(tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
