package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/personalab/persona-board/internal/config"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/mock"
	"github.com/personalab/persona-board/internal/service"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/internal/utils"
	"github.com/personalab/persona-board/models"
)

type schemaEnv struct {
	schema   graphql.Schema
	users    *mock.MockUserRepository
	personas *mock.MockPersonaRepository
	files    *mock.MockFileStorage
}

func newSchemaEnv(t *testing.T) *schemaEnv {
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
		Server: config.Server{PublicBaseURL: "http://localhost:5000"},
	}

	services := service.NewServices(&store.Storages{
		UserRepository:    users,
		PersonaRepository: personas,
		FileStorage:       files,
	}, cfg, logger.Nop())

	schema, err := newSchema(&resolver{services: services})
	require.NoError(t, err)

	return &schemaEnv{schema: schema, users: users, personas: personas, files: files}
}

func (e *schemaEnv) exec(ctx context.Context, query string, variables map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

func firstErrorMessage(result *graphql.Result) string {
	if len(result.Errors) == 0 {
		return ""
	}
	return result.Errors[0].Message
}

func TestPersonasQuery(t *testing.T) {
	env := newSchemaEnv(t)
	quote := "Great deals!"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	env.personas.EXPECT().
		ListPersonas(gomock.Any()).
		Return([]models.Persona{
			{ID: 1, UserID: 1, Name: "Shopper", Quote: &quote, CreatedAt: now, LastUpdated: now},
			{ID: 2, UserID: 1, Name: "Browser", CreatedAt: now, LastUpdated: now},
		}, nil)

	result := env.exec(context.Background(),
		`query { personas { id user_id name quote pain_points created_at } }`, nil)
	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)

	data := result.Data.(map[string]interface{})
	list := data["personas"].([]interface{})
	require.Len(t, list, 2)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, 1, first["user_id"])
	assert.Equal(t, "Great deals!", first["quote"])
	assert.Nil(t, first["pain_points"])
	assert.Equal(t, "2025-06-01T12:00:00Z", first["created_at"])

	second := list[1].(map[string]interface{})
	assert.Nil(t, second["quote"])
}

func TestPersonaQuery_UnknownIDIsNull(t *testing.T) {
	env := newSchemaEnv(t)

	env.personas.EXPECT().
		GetPersona(gomock.Any(), int64(99)).
		Return(models.Persona{}, store.ErrPersonaNotFound)

	result := env.exec(context.Background(), `query { persona(id: "99") { id name } }`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Nil(t, data["persona"])
}

func TestSignupMutation_ReturnsTokenAndUser(t *testing.T) {
	env := newSchemaEnv(t)

	env.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		})

	result := env.exec(context.Background(),
		`mutation { signup(name: "Alice", email: "alice@example.com", password: "pw") { token user { id name email } } }`, nil)
	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)

	payload := result.Data.(map[string]interface{})["signup"].(map[string]interface{})
	assert.NotEmpty(t, payload["token"])

	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "1", user["id"])
	assert.Equal(t, "alice@example.com", user["email"])

	token, err := utils.ValidateAndParseJWTToken(payload["token"].(string), "test-secret", "persona-board")
	require.NoError(t, err)
	assert.EqualValues(t, 1, token.UserID)
}

func TestLoginMutation_WrongPassword(t *testing.T) {
	env := newSchemaEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)

	env.users.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{UserID: 1, PasswordHash: string(hash)}, nil)

	result := env.exec(context.Background(),
		`mutation { login(email: "alice@example.com", password: "wrong") { token } }`, nil)
	assert.Equal(t, "Invalid credentials!", firstErrorMessage(result))
}

func TestLoginMutation_UnknownUser(t *testing.T) {
	env := newSchemaEnv(t)

	env.users.EXPECT().
		FindUserByEmail(gomock.Any(), "missing@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	result := env.exec(context.Background(),
		`mutation { login(email: "missing@example.com", password: "pw") { token } }`, nil)
	assert.Equal(t, "User not found!", firstErrorMessage(result))
}

func TestLoggedInUserQuery_RequiresIdentity(t *testing.T) {
	env := newSchemaEnv(t)

	result := env.exec(context.Background(), `query { loggedInUser { id } }`, nil)
	assert.Equal(t, "Not authenticated", firstErrorMessage(result))
}

func TestLoggedInUserQuery_WithIdentity(t *testing.T) {
	env := newSchemaEnv(t)

	env.users.EXPECT().
		FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Name: "Alice", Email: "alice@example.com"}, nil)

	ctx := context.WithValue(context.Background(), utils.UserIDCtxKey, int64(7))
	result := env.exec(ctx, `query { loggedInUser { id name email } }`, nil)
	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)

	user := result.Data.(map[string]interface{})["loggedInUser"].(map[string]interface{})
	assert.Equal(t, "7", user["id"])
	assert.Equal(t, "Alice", user["name"])
}

func TestAddPersonaMutation(t *testing.T) {
	env := newSchemaEnv(t)
	now := time.Now()

	env.personas.EXPECT().
		CreatePersona(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, persona models.Persona) (models.Persona, error) {
			require.EqualValues(t, 1, persona.UserID)
			require.Equal(t, "Shopper", persona.Name)
			require.NotNil(t, persona.Quote)
			require.Nil(t, persona.Description)
			persona.ID = 5
			persona.CreatedAt = now
			persona.LastUpdated = now
			return persona, nil
		})

	result := env.exec(context.Background(),
		`mutation { addPersona(user_id: 1, name: "Shopper", quote: "Great deals!") { id name quote description } }`, nil)
	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)

	persona := result.Data.(map[string]interface{})["addPersona"].(map[string]interface{})
	assert.Equal(t, "5", persona["id"])
	assert.Equal(t, "Great deals!", persona["quote"])
	assert.Nil(t, persona["description"])
}

func TestUpdatePersonaMutation_SendsOnlyProvidedFields(t *testing.T) {
	env := newSchemaEnv(t)

	env.personas.EXPECT().
		UpdatePersona(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, patch models.PersonaPatch) (models.Persona, error) {
			require.NotNil(t, patch.Quote)
			require.Nil(t, patch.Name)
			require.Nil(t, patch.AvatarURL)
			quote := *patch.Quote
			return models.Persona{ID: id, UserID: 1, Name: "Shopper", Quote: &quote}, nil
		})

	result := env.exec(context.Background(),
		`mutation { updatePersona(id: "1", quote: "Great deals!") { id name quote } }`, nil)
	require.Empty(t, result.Errors, "unexpected errors: %v", result.Errors)

	persona := result.Data.(map[string]interface{})["updatePersona"].(map[string]interface{})
	assert.Equal(t, "Shopper", persona["name"])
	assert.Equal(t, "Great deals!", persona["quote"])
}

func TestUpdatePersonaMutation_UnknownIDIsNull(t *testing.T) {
	env := newSchemaEnv(t)

	env.personas.EXPECT().
		UpdatePersona(gomock.Any(), int64(404), gomock.Any()).
		Return(models.Persona{}, store.ErrPersonaNotFound)

	result := env.exec(context.Background(),
		`mutation { updatePersona(id: "404", quote: "x") { id } }`, nil)
	require.Empty(t, result.Errors)
	assert.Nil(t, result.Data.(map[string]interface{})["updatePersona"])
}

func TestDeletePersonaMutation(t *testing.T) {
	env := newSchemaEnv(t)

	env.personas.EXPECT().
		DeletePersona(gomock.Any(), int64(1)).
		Return(nil)

	result := env.exec(context.Background(), `mutation { deletePersona(id: "1") }`, nil)
	require.Empty(t, result.Errors)
	assert.Equal(t, true, result.Data.(map[string]interface{})["deletePersona"])
}

func TestDeleteAllPersonasMutation_NotImplemented(t *testing.T) {
	env := newSchemaEnv(t)

	result := env.exec(context.Background(), `mutation { deleteAllPersonas }`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, firstErrorMessage(result), "not implemented")
}
