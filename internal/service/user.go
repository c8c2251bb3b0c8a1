package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"NotesBro/internal/model"
	"NotesBro/internal/repo"
)

// UserService инкапсулирует проверку учётных данных и bootstrap администратора.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Login проверяет пару логин/пароль. Закрыт по умолчанию: нет пользователя
// или не совпал хеш — одинаковый ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	// bcrypt сравнивает за константное время
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin создаёт учётную запись администратора, если её ещё нет.
// Пароль приходит из конфигурации процесса, в исходниках секретов нет.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return s.repo.CreateUser(ctx, &model.User{
		Username: username,
		Password: string(hash),
		Role:     model.RoleAdmin,
	})
}
