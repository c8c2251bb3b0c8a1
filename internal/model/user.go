package model

// Роли пользователей.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User — учётная запись. Пароль хранится только в виде bcrypt-хеша.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"not null;uniqueIndex" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:student" json:"role"` // admin или student
}
