package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"NotesBro/internal/config"
	"NotesBro/internal/middleware"
	"NotesBro/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	noteService *service.NoteService,
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithCORS)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	noteHandler := NewNoteHandler(noteService, logger)
	authHandler := NewAuthHandler(userService, logger, config)

	// Notes routes
	r.Get("/api/notes", noteHandler.List)
	r.Get("/api/notes/{id}", noteHandler.GetByID)
	r.Post("/api/notes", noteHandler.Create)
	r.Delete("/api/notes/{id}", noteHandler.Delete)

	// Auth routes
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Post("/api/auth/me", authHandler.Me)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage — единый формат тела ошибок и подтверждений: {"message": ...}
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
