package repository

import (
	"errors"
	"fmt"
	"time"

	"cargotrans/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заявками

// BidFilter — параметры выборки заявок
type BidFilter struct {
	UserID *uint
	Status ds.BidStatus
	Search string
}

// CreateBid создаёт заявку в статусе "новая"
func (r *Repository) CreateBid(bid *ds.Bid) error {
	if bid.Name == "" {
		bid.Name = "Заявка на перевозку"
	}
	bid.Status = ds.StatusNew
	bid.AssignedTruckID = nil
	bid.CreatedAt = time.Now()

	return r.db.Create(bid).Error
}

// GetBids возвращает заявки, новые сверху (по id)
func (r *Repository) GetBids(filter BidFilter) ([]ds.Bid, error) {
	query := r.db.Model(&ds.Bid{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("CAST(id AS TEXT) ILIKE ? OR wherefrom ILIKE ? OR towhere ILIKE ?",
			pattern, pattern, pattern)
	}

	var bids []ds.Bid
	err := query.Order("id DESC").Find(&bids).Error
	return bids, err
}

// GetBidByID возвращает заявку по ID
func (r *Repository) GetBidByID(id uint) (*ds.Bid, error) {
	var bid ds.Bid
	err := r.db.First(&bid, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// bidStatusUpdates возвращает изменения полей заявки для нового статуса.
// Отменённая заявка не может ссылаться на транспорт.
func bidStatusUpdates(newStatus ds.BidStatus) map[string]interface{} {
	updates := map[string]interface{}{"status": newStatus}
	if newStatus == ds.StatusCancelled {
		updates["assigned_truck_id"] = nil
	}
	return updates
}

// UpdateBidStatus переводит заявку в новый статус с проверкой графа переходов.
// При закрытии заявки (выполнена/отменена) назначенный транспорт
// возвращается в available, если это разрешено конфигурацией.
func (r *Repository) UpdateBidStatus(bidID uint, newStatus ds.BidStatus) (*ds.Bid, error) {
	if !ds.IsValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var updated *ds.Bid
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var bid ds.Bid
		if err := tx.First(&bid, bidID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !ds.CanTransition(bid.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, bid.Status, newStatus)
		}

		assignedTruckID := bid.AssignedTruckID
		if err := tx.Model(&bid).Updates(bidStatusUpdates(newStatus)).Error; err != nil {
			return err
		}
		bid.Status = newStatus
		if newStatus == ds.StatusCancelled {
			bid.AssignedTruckID = nil
		}

		if ds.IsTerminal(newStatus) && assignedTruckID != nil && r.releaseTruckOnClose {
			if err := tx.Model(&ds.Truck{}).
				Where("id = ?", *assignedTruckID).
				Update("status", ds.TruckAvailable).Error; err != nil {
				return err
			}
		}

		updated = &bid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CancelBid — отмена заявки её владельцем. Отменить можно только новую заявку.
func (r *Repository) CancelBid(bidID, userID uint) (*ds.Bid, error) {
	bid, err := r.GetBidByID(bidID)
	if err != nil {
		return nil, err
	}
	if bid.UserID == nil || *bid.UserID != userID {
		return nil, ErrNotFound
	}
	if bid.Status != ds.StatusNew {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, bid.Status, ds.StatusCancelled)
	}
	return r.UpdateBidStatus(bidID, ds.StatusCancelled)
}
