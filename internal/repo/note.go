package repo

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"NotesBro/internal/model"
)

// NoteFilter — явный набор необязательных критериев выборки.
// nil-указатель означает «критерий не задан» и не накладывает ограничений.
type NoteFilter struct {
	Search   string // подстрока в title или description без учёта регистра; пробельная строка == не задан
	Class    *string
	Subject  *string
	NoteType *string
}

// NoteRepository определяет контракт доступа к записям каталога для слоя сервиса.
type NoteRepository interface {
	// List возвращает записи, удовлетворяющие всем заданным критериям фильтра.
	// Порядок детерминированный: created_at, затем id.
	List(ctx context.Context, f NoteFilter) ([]model.Note, error)

	// GetByID возвращает запись по идентификатору или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Note, error)

	// Create сохраняет запись; ID и CreatedAt назначает хранилище.
	Create(ctx context.Context, note *model.Note) error

	// Delete удаляет запись навсегда. Возвращает gorm.ErrRecordNotFound,
	// если записи с таким id нет.
	Delete(ctx context.Context, id string) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт реализацию репозитория для Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

// List компилирует фильтр в один запрос: каждый заданный критерий добавляет
// AND-условие, значения всегда передаются параметрами — любая строка трактуется
// как данные, не как синтаксис запроса.
func (r *noteRepo) List(ctx context.Context, f NoteFilter) ([]model.Note, error) {
	q := r.db.WithContext(ctx).Model(&model.Note{})

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.Class != nil {
		q = q.Where("class = ?", *f.Class)
	}
	if f.Subject != nil {
		q = q.Where("subject = ?", *f.Subject)
	}
	if f.NoteType != nil {
		q = q.Where("note_type = ?", *f.NoteType)
	}

	var notes []model.Note
	if err := q.Order("created_at, id").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
