package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
}

// ============ Заявки ============

type CreateBidRequest struct {
	Name      string   `json:"name"`
	Wherefrom string   `json:"wherefrom" binding:"required"`
	Towhere   string   `json:"towhere" binding:"required"`
	Weight    *float64 `json:"weight" binding:"omitempty,gt=0"`
	Type      *string  `json:"type" binding:"omitempty,oneof=ordinary fragile dangerous oversized"`
	Date      *string  `json:"date"`
}

type UpdateBidStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTruckRequest struct {
	TruckID uint `json:"truck_id" binding:"required"`
}

// ============ Транспорт ============

type CreateTruckRequest struct {
	Model        string  `json:"model" binding:"required,max=100"`
	LicensePlate string  `json:"license_plate" binding:"required,max=20"`
	CapacityKg   float64 `json:"capacity_kg" binding:"required,gt=0"`
}

// ============ Контакты ============

type CreateContactRequest struct {
	Phone   string  `json:"phone" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

// ============ Калькулятор ============

type CalculateRequest struct {
	From     string   `json:"from" binding:"required"`
	To       string   `json:"to" binding:"required"`
	Weight   float64  `json:"weight" binding:"required,gt=0"`
	Type     string   `json:"type" binding:"omitempty,oneof=ordinary fragile dangerous oversized"`
	Distance *float64 `json:"distance" binding:"omitempty,gt=0"`
	Date     string   `json:"date"`
}

type CalculateResponse struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	DistanceKm float64   `json:"distance_km"`
	WeightKg   float64   `json:"weight_kg"`
	Type       string    `json:"type"`
	TypeName   string    `json:"type_name"`
	BaseCost   float64   `json:"base_cost"`
	WeightCost float64   `json:"weight_cost"`
	TypeCost   float64   `json:"type_cost"`
	TotalCost  float64   `json:"total_cost"`
	Multiplier float64   `json:"multiplier"`
	Timestamp  time.Time `json:"timestamp"`
}
