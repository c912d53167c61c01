package ds

import "time"

// Таблица обращений с формы контактов
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Name      *string   `gorm:"type:varchar(100)" json:"name"`
	Subject   *string   `gorm:"type:varchar(200)" json:"subject"`
	Message   *string   `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
