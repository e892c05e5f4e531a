package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"docklogger/internal/config"
	"docklogger/internal/domain"
	"docklogger/internal/service"
	"docklogger/mocks"
)

func newAuthService(userRepo *mocks.MockUserRepo) service.AuthService {
	return service.NewAuthService(userRepo, config.JWTConfig{
		Secret:             "test-secret",
		Issuer:             "docklogger-test",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// the stored hash must verify, never equal the raw password
		return u.Email == "dana@example.com" &&
			u.PasswordHash != "hunter2secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2secret")) == nil &&
			u.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 42
	}).Return(nil)

	svc := newAuthService(userRepo)
	user, pair, err := svc.Register(context.Background(), service.RegisterInput{
		Email:      "dana@example.com",
		Password:   "hunter2secret",
		FullName:   "Dana Reyes",
		UnionLocal: "Local 500",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	svc := newAuthService(userRepo)
	_, _, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
		FullName: "Dana Reyes",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     true,
	}, nil)

	svc := newAuthService(userRepo)
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     true,
	}, nil)

	svc := newAuthService(userRepo)
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	svc := newAuthService(userRepo)
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "hunter2secret",
	})

	// unknown email and wrong password are indistinguishable to the caller
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     false,
	}, nil)

	svc := newAuthService(userRepo)
	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	user := &domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, int64(42)).Return(user, nil)

	svc := newAuthService(userRepo)
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	claims, err := svc.ValidateToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	user := &domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(user, nil)

	svc := newAuthService(userRepo)
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateTokenRejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     true,
	}, nil)

	svc := newAuthService(userRepo)
	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ValidateTokenGarbage(t *testing.T) {
	svc := newAuthService(new(mocks.MockUserRepo))

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestAuthService_ValidateTokenWrongSecret(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(&domain.User{
		ID:           42,
		Email:        "dana@example.com",
		PasswordHash: hashPassword(t, "hunter2secret"),
		IsActive:     true,
	}, nil)

	issuer := newAuthService(userRepo)
	pair, err := issuer.Login(context.Background(), service.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	verifier := service.NewAuthService(new(mocks.MockUserRepo), config.JWTConfig{
		Secret:             "different-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})
	_, err = verifier.ValidateToken(pair.AccessToken)
	assert.Error(t, err)
}
