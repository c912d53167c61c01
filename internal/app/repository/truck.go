package repository

import (
	"errors"
	"strings"
	"time"

	"cargotrans/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с транспортом

// CreateTruck регистрирует транспорт со статусом available
func (r *Repository) CreateTruck(truck *ds.Truck) error {
	truck.Status = ds.TruckAvailable
	truck.CreatedAt = time.Now()

	err := r.db.Create(truck).Error
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrPlateTaken
	}
	return err
}

// GetAllTrucks возвращает весь транспорт
func (r *Repository) GetAllTrucks() ([]ds.Truck, error) {
	var trucks []ds.Truck
	err := r.db.Order("id").Find(&trucks).Error
	return trucks, err
}

// GetAvailableTrucks возвращает свободный транспорт
func (r *Repository) GetAvailableTrucks() ([]ds.Truck, error) {
	var trucks []ds.Truck
	err := r.db.Where("status = ?", ds.TruckAvailable).Order("id").Find(&trucks).Error
	return trucks, err
}

// GetTruckByID возвращает транспорт по ID
func (r *Repository) GetTruckByID(id uint) (*ds.Truck, error) {
	var truck ds.Truck
	err := r.db.First(&truck, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &truck, nil
}

// DeleteTruck удаляет транспорт из реестра
func (r *Repository) DeleteTruck(id uint) error {
	result := r.db.Delete(&ds.Truck{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateTruckImage сохраняет ссылку на фото транспорта
func (r *Repository) UpdateTruckImage(id uint, imageURL string) error {
	result := r.db.Model(&ds.Truck{}).Where("id = ?", id).Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
