package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/personalab/persona-board/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// wireUser mirrors the server's User type; id arrives as an ID string.
type wireUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// wirePersona mirrors the server's Persona type; id arrives as an ID
// string and timestamps as RFC 3339 strings.
type wirePersona struct {
	ID          string  `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	Quote       *string `json:"quote"`
	Description *string `json:"description"`
	Attitudes   *string `json:"attitudes"`
	PainPoints  *string `json:"pain_points"`
	JobsNeeds   *string `json:"jobs_needs"`
	Activities  *string `json:"activities"`
	AvatarURL   *string `json:"avatar_url"`
	CreatedAt   string  `json:"created_at"`
	LastUpdated string  `json:"last_updated"`
}

const personaFields = `id user_id name quote description attitudes pain_points jobs_needs activities avatar_url created_at last_updated`

// do executes one GraphQL operation and decodes its data object into out.
func (h *httpServerAdapter) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphqlRequest{Query: query, Variables: variables})
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Post("/graphql")
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope graphqlResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("graphql decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return mapGraphQLError(envelope.Errors[0].Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err = json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("graphql decode data: %w", err)
		}
	}

	return nil
}

func (h *httpServerAdapter) SignUp(ctx context.Context, name, email, password string) (models.AuthPayload, error) {
	const query = `mutation ($name: String!, $email: String!, $password: String!) {
		signup(name: $name, email: $email, password: $password) { token user { id name email } }
	}`

	var data struct {
		Signup *wireAuthPayload `json:"signup"`
	}
	err := h.do(ctx, query, map[string]interface{}{
		"name": name, "email": email, "password": password,
	}, &data)
	if err != nil {
		return models.AuthPayload{}, err
	}
	if data.Signup == nil {
		return models.AuthPayload{}, fmt.Errorf("signup: empty response")
	}

	payload, err := data.Signup.toModel()
	if err != nil {
		return models.AuthPayload{}, fmt.Errorf("signup: %w", err)
	}

	h.SetToken(payload.Token)
	return payload, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthPayload, error) {
	const query = `mutation ($email: String!, $password: String!) {
		login(email: $email, password: $password) { token user { id name email } }
	}`

	var data struct {
		Login *wireAuthPayload `json:"login"`
	}
	err := h.do(ctx, query, map[string]interface{}{
		"email": email, "password": password,
	}, &data)
	if err != nil {
		return models.AuthPayload{}, err
	}
	if data.Login == nil {
		return models.AuthPayload{}, fmt.Errorf("login: empty response")
	}

	payload, err := data.Login.toModel()
	if err != nil {
		return models.AuthPayload{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(payload.Token)
	return payload, nil
}

func (h *httpServerAdapter) LoggedInUser(ctx context.Context) (models.User, error) {
	const query = `query { loggedInUser { id name email } }`

	var data struct {
		LoggedInUser *wireUser `json:"loggedInUser"`
	}
	if err := h.do(ctx, query, nil, &data); err != nil {
		return models.User{}, err
	}
	if data.LoggedInUser == nil {
		return models.User{}, fmt.Errorf("loggedInUser: %w", ErrUnauthorized)
	}

	return data.LoggedInUser.toModel()
}

func (h *httpServerAdapter) Personas(ctx context.Context) ([]models.Persona, error) {
	query := fmt.Sprintf(`query { personas { %s } }`, personaFields)

	var data struct {
		Personas []wirePersona `json:"personas"`
	}
	if err := h.do(ctx, query, nil, &data); err != nil {
		return nil, err
	}

	personas := make([]models.Persona, 0, len(data.Personas))
	for _, wire := range data.Personas {
		persona, err := wire.toModel()
		if err != nil {
			return nil, fmt.Errorf("personas: %w", err)
		}
		personas = append(personas, persona)
	}

	return personas, nil
}

func (h *httpServerAdapter) Persona(ctx context.Context, id int64) (*models.Persona, error) {
	query := fmt.Sprintf(`query ($id: ID!) { persona(id: $id) { %s } }`, personaFields)

	var data struct {
		Persona *wirePersona `json:"persona"`
	}
	err := h.do(ctx, query, map[string]interface{}{"id": strconv.FormatInt(id, 10)}, &data)
	if err != nil {
		return nil, err
	}
	if data.Persona == nil {
		return nil, nil
	}

	persona, err := data.Persona.toModel()
	if err != nil {
		return nil, fmt.Errorf("persona: %w", err)
	}
	return &persona, nil
}

func (h *httpServerAdapter) AddPersona(ctx context.Context, persona models.Persona) (models.Persona, error) {
	query := fmt.Sprintf(`mutation ($user_id: Int!, $name: String!, $quote: String, $description: String,
		$attitudes: String, $pain_points: String, $jobs_needs: String, $activities: String, $avatar_url: String) {
		addPersona(user_id: $user_id, name: $name, quote: $quote, description: $description,
			attitudes: $attitudes, pain_points: $pain_points, jobs_needs: $jobs_needs,
			activities: $activities, avatar_url: $avatar_url) { %s }
	}`, personaFields)

	variables := map[string]interface{}{
		"user_id":     persona.UserID,
		"name":        persona.Name,
		"quote":       persona.Quote,
		"description": persona.Description,
		"attitudes":   persona.Attitudes,
		"pain_points": persona.PainPoints,
		"jobs_needs":  persona.JobsNeeds,
		"activities":  persona.Activities,
		"avatar_url":  persona.AvatarURL,
	}

	var data struct {
		AddPersona *wirePersona `json:"addPersona"`
	}
	if err := h.do(ctx, query, variables, &data); err != nil {
		return models.Persona{}, err
	}
	if data.AddPersona == nil {
		return models.Persona{}, fmt.Errorf("addPersona: empty response")
	}

	created, err := data.AddPersona.toModel()
	if err != nil {
		return models.Persona{}, fmt.Errorf("addPersona: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) UpdatePersona(ctx context.Context, id int64, patch models.PersonaPatch) (*models.Persona, error) {
	query := fmt.Sprintf(`mutation ($id: ID!, $name: String, $quote: String, $description: String,
		$attitudes: String, $pain_points: String, $jobs_needs: String, $activities: String, $avatar_url: String) {
		updatePersona(id: $id, name: $name, quote: $quote, description: $description,
			attitudes: $attitudes, pain_points: $pain_points, jobs_needs: $jobs_needs,
			activities: $activities, avatar_url: $avatar_url) { %s }
	}`, personaFields)

	variables := map[string]interface{}{
		"id":          strconv.FormatInt(id, 10),
		"name":        patch.Name,
		"quote":       patch.Quote,
		"description": patch.Description,
		"attitudes":   patch.Attitudes,
		"pain_points": patch.PainPoints,
		"jobs_needs":  patch.JobsNeeds,
		"activities":  patch.Activities,
		"avatar_url":  patch.AvatarURL,
	}

	var data struct {
		UpdatePersona *wirePersona `json:"updatePersona"`
	}
	if err := h.do(ctx, query, variables, &data); err != nil {
		return nil, err
	}
	if data.UpdatePersona == nil {
		return nil, nil
	}

	updated, err := data.UpdatePersona.toModel()
	if err != nil {
		return nil, fmt.Errorf("updatePersona: %w", err)
	}
	return &updated, nil
}

func (h *httpServerAdapter) DeletePersona(ctx context.Context, id int64) (bool, error) {
	const query = `mutation ($id: ID!) { deletePersona(id: $id) }`

	var data struct {
		DeletePersona bool `json:"deletePersona"`
	}
	err := h.do(ctx, query, map[string]interface{}{"id": strconv.FormatInt(id, 10)}, &data)
	if err != nil {
		return false, err
	}

	return data.DeletePersona, nil
}

type wireAuthPayload struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

func (w *wireAuthPayload) toModel() (models.AuthPayload, error) {
	user, err := w.User.toModel()
	if err != nil {
		return models.AuthPayload{}, err
	}
	return models.AuthPayload{Token: w.Token, User: user}, nil
}

func (w *wireUser) toModel() (models.User, error) {
	userID, err := strconv.ParseInt(w.ID, 10, 64)
	if err != nil {
		return models.User{}, fmt.Errorf("parse user id %q: %w", w.ID, err)
	}
	return models.User{UserID: userID, Name: w.Name, Email: w.Email}, nil
}

func (w *wirePersona) toModel() (models.Persona, error) {
	id, err := strconv.ParseInt(w.ID, 10, 64)
	if err != nil {
		return models.Persona{}, fmt.Errorf("parse persona id %q: %w", w.ID, err)
	}

	persona := models.Persona{
		ID:          id,
		UserID:      w.UserID,
		Name:        w.Name,
		Quote:       w.Quote,
		Description: w.Description,
		Attitudes:   w.Attitudes,
		PainPoints:  w.PainPoints,
		JobsNeeds:   w.JobsNeeds,
		Activities:  w.Activities,
		AvatarURL:   w.AvatarURL,
	}

	// timestamps are informational on the client; unparseable values stay zero
	if t, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		persona.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, w.LastUpdated); err == nil {
		persona.LastUpdated = t
	}

	return persona, nil
}
