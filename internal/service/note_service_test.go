package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"NotesBro/internal/model"
	"NotesBro/internal/repo"
)

// мок для repo.NoteRepository
type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) List(ctx context.Context, f repo.NoteFilter) ([]model.Note, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Note); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteRepo) Create(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.NoteRepository = (*mockNoteRepo)(nil)

func validCreateReq() CreateNoteRequest {
	return CreateNoteRequest{
		Title:     "Algebra Basics",
		Class:     "Class 9",
		Subject:   "Mathematics",
		NoteType:  model.NoteTypePremium,
		DriveLink: "https://drive.example.com/abc",
	}
}

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)
		m.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Note) bool {
			return n.Title == "Algebra Basics" && n.NoteType == model.NoteTypePremium
		})).Return(nil).Once()

		note, err := svc.Create(ctx, validCreateReq())
		assert.NoError(t, err)
		assert.Equal(t, "Algebra Basics", note.Title)
		m.AssertExpectations(t)
	})

	t.Run("missing driveLink is rejected without persisting", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)

		req := validCreateReq()
		req.DriveLink = ""
		note, err := svc.Create(ctx, req)
		assert.Nil(t, note)
		ve, ok := AsValidationError(err)
		if assert.True(t, ok) {
			assert.Equal(t, []string{"driveLink"}, ve.Fields)
		}
		// репозиторий не трогали
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("noteType outside fixed set", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)

		req := validCreateReq()
		req.NoteType = "handwritten"
		_, err := svc.Create(ctx, req)
		ve, ok := AsValidationError(err)
		if assert.True(t, ok) {
			assert.Equal(t, []string{"noteType"}, ve.Fields)
		}
	})

	t.Run("all offending fields enumerated", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)

		// пустой payload: description не обязателен, остальные — да
		_, err := svc.Create(ctx, CreateNoteRequest{})
		ve, ok := AsValidationError(err)
		if assert.True(t, ok) {
			assert.Equal(t, []string{"title", "class", "subject", "noteType", "driveLink"}, ve.Fields)
		}
	})

	t.Run("whitespace-only title rejected", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)

		req := validCreateReq()
		req.Title = "   "
		_, err := svc.Create(ctx, req)
		ve, ok := AsValidationError(err)
		if assert.True(t, ok) {
			assert.Equal(t, []string{"title"}, ve.Fields)
		}
	})
}

func TestNoteService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)
		m.On("GetByID", mock.Anything, "n-1").Return(&model.Note{ID: "n-1", Title: "x"}, nil).Once()

		note, err := svc.GetByID(ctx, "n-1")
		assert.NoError(t, err)
		assert.Equal(t, "n-1", note.ID)
		m.AssertExpectations(t)
	})

	t.Run("not found maps to ErrNoteNotFound", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)
		m.On("GetByID", mock.Anything, "nope").Return((*model.Note)(nil), gorm.ErrRecordNotFound).Once()

		note, err := svc.GetByID(ctx, "nope")
		assert.Nil(t, note)
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("ok then not found", func(t *testing.T) {
		m := new(mockNoteRepo)
		svc := NewNoteService(m)
		m.On("Delete", mock.Anything, "n-1").Return(nil).Once()
		m.On("Delete", mock.Anything, "n-1").Return(gorm.ErrRecordNotFound).Once()

		assert.NoError(t, svc.Delete(ctx, "n-1"))
		assert.ErrorIs(t, svc.Delete(ctx, "n-1"), ErrNoteNotFound)
		m.AssertExpectations(t)
	})
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()
	m := new(mockNoteRepo)
	svc := NewNoteService(m)

	// фильтр передаётся в репозиторий как есть; пустой результат — не ошибка
	f := repo.NoteFilter{Search: "algebra"}
	m.On("List", mock.Anything, f).Return([]model.Note{}, nil).Once()

	notes, err := svc.List(ctx, f)
	assert.NoError(t, err)
	assert.Empty(t, notes)
	m.AssertExpectations(t)
}
