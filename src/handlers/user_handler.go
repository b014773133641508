package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/0pain01/Financial-Foresight/src/config"
	"github.com/0pain01/Financial-Foresight/src/database"
	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/model"
	"github.com/0pain01/Financial-Foresight/src/security"
	"github.com/0pain01/Financial-Foresight/src/utils"
)

type UserHandler struct {
	authService *security.AuthService
}

func NewUserHandler(authService *security.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	User         *model.User `json:"user,omitempty"`
}

// RegisterUserHandler creates an account and returns a signed token for it.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		utils.SendJSONError(w, "username, email and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	user := &model.User{Username: req.Username, Email: req.Email}
	if err := user.HashPassword(req.Password); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to hash password", "error", err)
		utils.SendJSONError(w, "Failed to register user", http.StatusInternalServerError)
		return
	}
	if err := user.CreateUser(database.DB); err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to create user", "email", req.Email, "error", err)
		utils.SendJSONError(w, "Could not create account; the username or email may already be taken", http.StatusConflict)
		return
	}

	token, refreshToken, err := h.issueTokenPair(user.ID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to issue token", "userID", user.ID, "error", err)
		utils.SendJSONError(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	logger.InfoFromContext(r.Context(), "User registered", "userID", user.ID)
	utils.SendJSONResponse(w, authResponse{Token: token, RefreshToken: refreshToken, User: user}, http.StatusCreated)
}

// LoginUserHandler checks credentials and returns a signed token.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := model.GetUserByEmail(database.DB, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.ErrorFromContext(r.Context(), "Failed to look up user", "error", err)
		}
		utils.SendJSONError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err := user.CheckPassword(req.Password); err != nil {
		utils.SendJSONError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, refreshToken, err := h.issueTokenPair(user.ID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to issue token", "userID", user.ID, "error", err)
		utils.SendJSONError(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	logger.InfoFromContext(r.Context(), "User logged in", "userID", user.ID)
	utils.SendJSONResponse(w, authResponse{Token: token, RefreshToken: refreshToken, User: user}, http.StatusOK)
}

// RefreshTokenHandler exchanges a still-valid refresh token for a fresh token
// pair.
func (h *UserHandler) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		utils.SendJSONError(w, "refreshToken is required", http.StatusBadRequest)
		return
	}

	userID, err := h.authService.ValidateToken(req.RefreshToken)
	if err != nil {
		utils.SendJSONError(w, "Invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	token, refreshToken, err := h.issueTokenPair(userID)
	if err != nil {
		logger.ErrorFromContext(r.Context(), "Failed to issue token", "userID", userID, "error", err)
		utils.SendJSONError(w, "Failed to refresh session", http.StatusInternalServerError)
		return
	}
	utils.SendJSONResponse(w, authResponse{Token: token, RefreshToken: refreshToken}, http.StatusOK)
}

func (h *UserHandler) issueTokenPair(userID int64) (access, refresh string, err error) {
	access, err = h.authService.IssueToken(userID, config.Cfg.AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}
	refresh, err = h.authService.IssueToken(userID, config.Cfg.RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
