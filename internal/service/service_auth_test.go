package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/personalab/persona-board/internal/config"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/mock"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-secret",
		TokenIssuer:   "persona-board",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig(), logger.Nop()), repo
}

func TestSignUp_StoresBcryptHashNotPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	var stored models.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		})

	created, err := svc.SignUp(ctx, "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.UserID)

	require.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "expected a bcrypt hash, got %q", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestSignUp_SamePasswordYieldsDifferentHashes(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	var hashes []string
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			hashes = append(hashes, user.PasswordHash)
			return user, nil
		}).
		Times(2)

	_, err := svc.SignUp(ctx, "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "Bob", "bob@example.com", "s3cret")
	require.NoError(t, err)

	require.Len(t, hashes, 2)
	assert.NotEqual(t, hashes[0], hashes[1], "bcrypt salts must differ per user")
}

func TestSignUp_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "alice@example.com", "pw"},
		{"empty email", "Alice", "", "pw"},
		{"empty password", "Alice", "alice@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(ctx, "Alice", "alice@example.com", "pw")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{UserID: 7, Email: "alice@example.com", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{UserID: 7, PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "missing@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "missing@example.com", "pw")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.EqualValues(t, 42, parsed.UserID)
}

func TestParseToken_WrongKeyRejected(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	other := NewAuthService(mock.NewMockUserRepository(ctrl), config.App{
		TokenSignKey:  "different-secret",
		TokenIssuer:   "persona-board",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err = other.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_GarbageRejected(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestUsers_PropagatesRepositoryError(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().
		ListUsers(gomock.Any()).
		Return(nil, errors.New("db down"))

	_, err := svc.Users(ctx)
	assert.Error(t, err)
}
