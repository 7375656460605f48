package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
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
	"github.com/personalab/persona-board/internal/service"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

type testEnv struct {
	router   http.Handler
	users    *mock.MockUserRepository
	personas *mock.MockPersonaRepository
	files    *mock.MockFileStorage
	dir      string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	personas := mock.NewMockPersonaRepository(ctrl)
	files := mock.NewMockFileStorage(ctrl)

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-secret",
			TokenIssuer:   "persona-board",
			TokenDuration: time.Hour,
		},
		Server: config.Server{
			PublicBaseURL: "http://localhost:5000",
		},
	}

	services := service.NewServices(&store.Storages{
		UserRepository:    users,
		PersonaRepository: personas,
		FileStorage:       files,
	}, cfg, logger.Nop())

	dir := t.TempDir()
	h, err := NewHandler(services, dir, logger.Nop())
	require.NoError(t, err)

	return &testEnv{
		router:   h.Init(),
		users:    users,
		personas: personas,
		files:    files,
		dir:      dir,
	}
}

func (e *testEnv) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestSignupEndpoint_Success(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			user.CreatedAt = time.Now()
			return user, nil
		})

	rec := env.post(t, "/signup", `{"name":"Alice","email":"alice@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "alice@example.com", body["email"])

	// the hash must never appear in any response field
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2")
}

func TestSignupEndpoint_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	rec := env.post(t, "/signup", `{"name":"Alice","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

func TestSignupEndpoint_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/signup", `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupEndpoint_OpaqueStoreError(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, assert.AnError)

	rec := env.post(t, "/signup", `{"name":"Alice","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestLoginEndpoint_Success(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	env.users.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{UserID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}, nil)

	rec := env.post(t, "/login", `{"email":"alice@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.EqualValues(t, 7, body.User.UserID)
	assert.NotContains(t, rec.Body.String(), "$2")
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/login", `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and password are required")
}

func TestLoginEndpoint_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().
		FindUserByEmail(gomock.Any(), "missing@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	rec := env.post(t, "/login", `{"email":"missing@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)

	env.users.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{UserID: 7, PasswordHash: string(hash)}, nil)

	rec := env.post(t, "/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect password")
}

func TestUploadsEndpoint_ServesStoredFiles(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, os.WriteFile(filepath.Join(env.dir, "key__avatar.png"), []byte("avatar bytes"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/uploads/key__avatar.png", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "avatar bytes", rec.Body.String())
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/login", `{"email":"a@b.c"}`)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
}
