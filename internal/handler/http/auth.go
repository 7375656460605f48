package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/service"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/internal/utils"
	"github.com/personalab/persona-board/models"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "name, email and password are required"}, http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: "email already exists"}, http.StatusConflict)
		default:
			// store error detail stays in the log; clients get an opaque message
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteJSON(w, models.ErrorResponse{Error: "internal server error"}, http.StatusInternalServerError)
		}
		return
	}

	// the user row is serialized without its password hash
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("email or password missing")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Email and password are required"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// the two failure modes keep distinct messages, matching the
		// documented API contract
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("email", req.Email).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusUnauthorized)
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("email", req.Email).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Incorrect password"}, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.ErrorResponse{Error: "internal server error"}, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Message: "Login successful", User: foundUser}, http.StatusOK)
}
