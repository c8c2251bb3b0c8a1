package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"NotesBro/internal/model"
	"NotesBro/internal/repo"
)

// CreateNoteRequest — входной payload операции создания записи.
type CreateNoteRequest struct {
	Title       string
	Description string
	Class       string
	Subject     string
	NoteType    string
	DriveLink   string
}

// NoteService инкапсулирует бизнес-логику каталога конспектов.
// Сервис не хранит состояния: всё владение данными у репозитория.
type NoteService struct {
	repo repo.NoteRepository
}

func NewNoteService(r repo.NoteRepository) *NoteService {
	return &NoteService{repo: r}
}

// List возвращает записи по фильтру. Пустой результат — не ошибка.
func (s *NoteService) List(ctx context.Context, f repo.NoteFilter) ([]model.Note, error) {
	notes, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// GetByID возвращает запись или ErrNoteNotFound.
func (s *NoteService) GetByID(ctx context.Context, id string) (*model.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return note, nil
}

// Create валидирует payload и сохраняет запись. ID и CreatedAt назначает
// хранилище. Либо запись сохранена целиком, либо не сохранено ничего.
func (s *NoteService) Create(ctx context.Context, req CreateNoteRequest) (*model.Note, error) {
	if err := validateNote(req); err != nil {
		return nil, err
	}

	note := &model.Note{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Class:       req.Class,
		Subject:     req.Subject,
		NoteType:    req.NoteType,
		DriveLink:   req.DriveLink,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// Delete удаляет запись навсегда или возвращает ErrNoteNotFound.
// Повторный вызов по тому же id безопасен: второй просто увидит not found.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// validateNote собирает ВСЕ нарушения обязательных полей, а не только первое.
func validateNote(req CreateNoteRequest) error {
	var bad []string
	if strings.TrimSpace(req.Title) == "" {
		bad = append(bad, "title")
	}
	if strings.TrimSpace(req.Class) == "" {
		bad = append(bad, "class")
	}
	if strings.TrimSpace(req.Subject) == "" {
		bad = append(bad, "subject")
	}
	if !model.ValidNoteType(req.NoteType) {
		bad = append(bad, "noteType")
	}
	if strings.TrimSpace(req.DriveLink) == "" {
		bad = append(bad, "driveLink")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}
