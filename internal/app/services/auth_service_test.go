package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webslearn/webslearn/internal/app/models"
	"github.com/webslearn/webslearn/internal/app/models/dto"
	"github.com/webslearn/webslearn/internal/pkg/apperrors"
	"github.com/webslearn/webslearn/internal/pkg/auth"
)

func newAuthServiceForTest(userRepo *fakeUserRepo) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "webslearn.test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop())
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleInstructor,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)

	// The stored password is hashed, never the plaintext.
	stored := userRepo.users[1]
	assert.NotEqual(t, "s3cret-pass", stored.Password)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "jdoe@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "jdoe", login.User.Username)
	assert.Equal(t, models.RoleInstructor, login.User.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo())
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleStudent,
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginBadCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "jdoe@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "s3cret-pass",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "jdoe@example.com", profile.Email)

	_, err = svc.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
