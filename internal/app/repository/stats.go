package repository

import "cargotrans/internal/app/ds"

// Статистика для админ-панели

type Stats struct {
	TotalBids       int64 `json:"totalBids"`
	NewBids         int64 `json:"newBids"`
	ActiveBids      int64 `json:"activeBids"`
	CompletedBids   int64 `json:"completedBids"`
	TotalUsers      int64 `json:"totalUsers"`
	AvailableTrucks int64 `json:"availableTrucks"`
}

func (r *Repository) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := r.db.Model(&ds.Bid{}).Count(&stats.TotalBids).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.Bid{}).Where("status = ?", ds.StatusNew).Count(&stats.NewBids).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.Bid{}).Where("status = ?", ds.StatusInProgress).Count(&stats.ActiveBids).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.Bid{}).Where("status = ?", ds.StatusCompleted).Count(&stats.CompletedBids).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.Truck{}).Where("status = ?", ds.TruckAvailable).Count(&stats.AvailableTrucks).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
