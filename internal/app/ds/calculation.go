package ds

import "time"

// Журнал расчётов калькулятора (append-only)
type Calculation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	From       string    `gorm:"column:wherefrom;type:varchar(100)" json:"from"`
	To         string    `gorm:"column:towhere;type:varchar(100)" json:"to"`
	DistanceKm float64   `gorm:"type:decimal(10,2)" json:"distance_km"`
	WeightKg   float64   `gorm:"type:decimal(10,2)" json:"weight_kg"`
	Type       string    `gorm:"type:varchar(20)" json:"type"`
	Cost       float64   `gorm:"type:decimal(12,2)" json:"cost"`
	CreatedAt  time.Time `json:"timestamp"`
}
