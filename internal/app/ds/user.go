package ds

import (
	"time"

	"cargotrans/internal/app/role"
)

// Таблица пользователей (client_auth)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Login     string    `gorm:"type:varchar(50);unique;not null" json:"login"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt-хеш
	Role      role.Role `gorm:"type:int;default:0;not null" json:"role"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Email     string    `gorm:"type:varchar(100)" json:"email"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
