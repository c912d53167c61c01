package ds

import "time"

// Таблица заявок на перевозку
type Bid struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100)" json:"name"`
	Wherefrom       string    `gorm:"type:varchar(100);not null" json:"wherefrom"`
	Towhere         string    `gorm:"type:varchar(100);not null" json:"towhere"`
	Status          BidStatus `gorm:"type:varchar(20);not null" json:"status"`
	UserID          *uint     `gorm:"index" json:"user_id"`
	Weight          *float64  `gorm:"type:decimal(10,2)" json:"weight"` // кг
	Type            *string   `gorm:"type:varchar(20)" json:"type"`    // ordinary, fragile, dangerous, oversized
	Date            *string   `gorm:"type:varchar(10)" json:"date"`    // желаемая дата перевозки, YYYY-MM-DD
	AssignedTruckID *uint     `gorm:"index" json:"assigned_truck_id"`
	CreatedAt       time.Time `json:"created_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Truck *Truck `gorm:"foreignKey:AssignedTruckID" json:"-"`
}
