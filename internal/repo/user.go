package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"NotesBro/internal/model"
)

// UserRepository определяет минимальный контракт доступа к пользователям.
// Записи создаются только при bootstrap и читаются при проверке логина.
type UserRepository interface {
	// GetUserByUsername ищет пользователя по точному совпадению логина.
	// Возвращает gorm.ErrRecordNotFound, если такого нет.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// CreateUser сохраняет пользователя. Пароль должен быть уже захеширован.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
