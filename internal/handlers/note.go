package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"NotesBro/internal/middleware"
	"NotesBro/internal/repo"
	"NotesBro/internal/service"
)

// NoteHandler обрабатывает операции каталога конспектов.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
}

// NewNoteHandler создаёт хендлер notes
func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger}
}

// createNoteRequest — JSON-контракт POST /api/notes.
type createNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Class       string `json:"class"`
	Subject     string `json:"subject"`
	NoteType    string `json:"noteType"`
	DriveLink   string `json:"driveLink"`
}

// filterFromQuery собирает NoteFilter из query-параметров.
// Отсутствующий или пустой параметр не накладывает ограничений и не ошибка.
func filterFromQuery(r *http.Request) repo.NoteFilter {
	q := r.URL.Query()
	f := repo.NoteFilter{Search: q.Get("search")}
	if v := q.Get("class"); v != "" {
		f.Class = &v
	}
	if v := q.Get("subject"); v != "" {
		f.Subject = &v
	}
	if v := q.Get("noteType"); v != "" {
		f.NoteType = &v
	}
	return f
}

// requireAdmin проверяет право на мутацию: 401 без валидного токена,
// 403 при валидном токене без роли admin. Причины 401 не различаются.
func (h *NoteHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authorization token required")
		return false
	}
	if !claims.IsAdmin() {
		writeMessage(w, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}

// List отдаёт записи по необязательным фильтрам. Пустой результат — 200 и [].
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.NoteService.List(r.Context(), filterFromQuery(r))
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// GetByID отдаёт одну запись или 404.
func (h *NoteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	note, err := h.NoteService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		h.Logger.Errorw("GetByID: service error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch note")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// Create создаёт запись. Только admin.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.NoteService.Create(r.Context(), service.CreateNoteRequest{
		Title:       req.Title,
		Description: req.Description,
		Class:       req.Class,
		Subject:     req.Subject,
		NoteType:    req.NoteType,
		DriveLink:   req.DriveLink,
	})
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid note data",
				"errors":  ve.Fields,
			})
			return
		}
		h.Logger.Errorw("Create: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create note")
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// Delete удаляет запись навсегда. Только admin.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.NoteService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeMessage(w, http.StatusNotFound, "Note not found")
			return
		}
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	writeMessage(w, http.StatusOK, "Note deleted successfully")
}
