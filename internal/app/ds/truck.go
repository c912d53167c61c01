package ds

import "time"

// Статусы транспорта
const (
	TruckAvailable = "available"
	TruckBusy      = "busy"
)

// Таблица транспорта
type Truck struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Model        string    `gorm:"type:varchar(100);not null" json:"model"`
	LicensePlate string    `gorm:"type:varchar(20);unique;not null" json:"license_plate"`
	CapacityKg   float64   `gorm:"type:decimal(10,2);not null" json:"capacity_kg"`
	Status       string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	ImageURL     *string   `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}
