package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"NotesBro/internal/auth"
	"NotesBro/internal/config"
	"NotesBro/internal/handlers"
	"NotesBro/internal/model"
	"NotesBro/internal/repo"
	"NotesBro/internal/service"
)

const testSecret = "test-secret"

// Minimal mocks
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

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// --- Helpers ---
func newTestRouter(t *testing.T, nr repo.NoteRepository, ur repo.UserRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	noteSvc := service.NewNoteService(nr)
	userSvc := service.NewUserService(ur)

	h := handlers.NewHandler(noteSvc, userSvc, logger, cfg)
	return h.Router
}

// addBearer подписывает токен для пользователя с указанной ролью и ставит заголовок
func addBearer(t *testing.T, req *http.Request, role string) {
	t.Helper()
	token, err := auth.GenerateToken(&model.User{ID: "u-1", Username: "someone", Role: role}, testSecret)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
