package model

import "time"

// Допустимые значения поля NoteType.
const (
	NoteTypePremium  = "premium"
	NoteTypeOnePager = "one_pager"
	NoteTypeAnimated = "animated"
	NoteTypeTyped    = "typed"
)

// NoteTypes — фиксированный набор типов конспектов.
var NoteTypes = []string{NoteTypePremium, NoteTypeOnePager, NoteTypeAnimated, NoteTypeTyped}

// ValidNoteType проверяет, входит ли значение в фиксированный набор.
func ValidNoteType(v string) bool {
	for _, t := range NoteTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Note — запись каталога: метаданные конспекта и внешняя ссылка на содержимое.
type Note struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	Class    string `gorm:"not null" json:"class"` // Class 9, 10, 11, 12
	Subject  string `gorm:"not null" json:"subject"`
	NoteType string `gorm:"not null" json:"noteType"` // premium, one_pager, animated, typed

	DriveLink string `gorm:"not null" json:"driveLink"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
