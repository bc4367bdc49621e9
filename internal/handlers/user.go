package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"GeoConsole/internal/config"
	"GeoConsole/internal/middleware"
	"GeoConsole/internal/service"
)

// UserHandler handles authentication.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	User        loginUser `json:"user"`
}

// Login checks email+password and issues an access token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "", "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "", "email and password are required")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "", "이메일 또는 비밀번호가 올바르지 않습니다")
			return
		}
		h.Logger.Errorw("Login: service error", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}

	token, err := middleware.BuildToken(user.ID, h.Config.AuthSecret, middleware.TokenTTL)
	if err != nil {
		h.Logger.Errorw("Login: token build failed", "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		User:        loginUser{ID: user.ID, Email: user.Email},
	})
}
