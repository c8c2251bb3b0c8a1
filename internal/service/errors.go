package service

import (
	"errors"
	"fmt"
	"strings"
)

// Сентинелы доменных ошибок. Хендлеры мапят их на HTTP-статусы.
var (
	// ErrNoteNotFound — записи с таким идентификатором нет.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidCredentials — неверная пара логин/пароль. Причина
	// (нет пользователя или не совпал пароль) наружу не различается.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError перечисляет поля, из-за которых отклонён payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid note data: %s", strings.Join(e.Fields, ", "))
}

// AsValidationError достаёт *ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
