package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"NotesBro/internal/auth"
	"NotesBro/internal/config"
	"NotesBro/internal/middleware"
	"NotesBro/internal/service"
)

// AuthHandler обрабатывает выдачу токенов.
type AuthHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewAuthHandler создаёт хендлер auth
func NewAuthHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{UserService: userService, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

// Login обменивает пару логин/пароль на подписанный токен.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := auth.GenerateToken(user, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("Login: token generation failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		User:  userDTO{ID: user.ID, Username: user.Username, Role: user.Role},
		Token: token,
	})
}

// Logout подтверждает выход. Токены самодостаточны, на сервере
// инвалидировать нечего — клиент просто забывает токен.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

// Me возвращает принципала из проверенного токена; без токена — anonymous.
// SPA восстанавливает по нему состояние админа после перезагрузки.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil, "result": "anonymous"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user":   userDTO{ID: claims.UserID, Username: claims.Username, Role: claims.Role},
		"result": "authorized",
	})
}
