package repository

import (
	"errors"
	"fmt"

	"cargotrans/internal/app/ds"

	"gorm.io/gorm"
)

// Подбор транспорта под новые заявки

// Suggestion — новая заявка и подходящий под неё свободный транспорт
type Suggestion struct {
	Bid    ds.Bid     `json:"bid"`
	Trucks []ds.Truck `json:"trucks"`
}

// truckFits — транспорт подходит, если у заявки не указан вес
// или грузоподъёмность не меньше веса груза
func truckFits(truck ds.Truck, bid ds.Bid) bool {
	return bid.Weight == nil || truck.CapacityKg >= *bid.Weight
}

// eligibleTrucks отбирает транспорт, подходящий под заявку
func eligibleTrucks(bid ds.Bid, trucks []ds.Truck) []ds.Truck {
	fit := make([]ds.Truck, 0, len(trucks))
	for _, t := range trucks {
		if truckFits(t, bid) {
			fit = append(fit, t)
		}
	}
	return fit
}

// GetSuggestions возвращает для каждой новой заявки список свободного
// транспорта достаточной грузоподъёмности
func (r *Repository) GetSuggestions() ([]Suggestion, error) {
	newBids, err := r.GetBids(BidFilter{Status: ds.StatusNew})
	if err != nil {
		return nil, err
	}

	available, err := r.GetAvailableTrucks()
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(newBids))
	for _, bid := range newBids {
		suggestions = append(suggestions, Suggestion{
			Bid:    bid,
			Trucks: eligibleTrucks(bid, available),
		})
	}
	return suggestions, nil
}

// AssignTruckToBid назначает транспорт на заявку: заявка переходит
// в "в работе", транспорт становится busy. Выполняется одной транзакцией.
func (r *Repository) AssignTruckToBid(bidID, truckID uint) (*ds.Bid, error) {
	var assigned *ds.Bid
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var bid ds.Bid
		if err := tx.First(&bid, bidID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var truck ds.Truck
		if err := tx.First(&truck, truckID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !ds.CanTransition(bid.Status, ds.StatusInProgress) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, bid.Status, ds.StatusInProgress)
		}
		if truck.Status != ds.TruckAvailable {
			return ErrTruckUnavailable
		}
		if !truckFits(truck, bid) {
			return ErrCapacityExceeded
		}

		if err := tx.Model(&bid).Updates(map[string]interface{}{
			"status":            ds.StatusInProgress,
			"assigned_truck_id": truck.ID,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&truck).Update("status", ds.TruckBusy).Error; err != nil {
			return err
		}

		bid.Status = ds.StatusInProgress
		bid.AssignedTruckID = &truck.ID
		assigned = &bid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}
