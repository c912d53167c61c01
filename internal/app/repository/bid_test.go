package repository

import (
	"fmt"
	"testing"
	"time"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dsn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidStatusUpdates(t *testing.T) {
	// отмена сбрасывает ссылку на транспорт
	updates := bidStatusUpdates(ds.StatusCancelled)
	assert.Equal(t, ds.StatusCancelled, updates["status"])
	truckRef, ok := updates["assigned_truck_id"]
	require.True(t, ok)
	assert.Nil(t, truckRef)

	// остальные переходы транспорт не трогают
	for _, s := range []ds.BidStatus{ds.StatusNew, ds.StatusInProgress, ds.StatusCompleted} {
		updates := bidStatusUpdates(s)
		assert.Equal(t, s, updates["status"])
		_, ok := updates["assigned_truck_id"]
		assert.False(t, ok, "status %s", s)
	}
}

func TestCancelledBidLosesTruckReference(t *testing.T) {
	connStr := dsn.FromEnv()
	if connStr == "" {
		t.Skip("DB_HOST is not set")
	}

	repo, err := New(connStr, true)
	require.NoError(t, err)

	weight := float64(1000)
	bid := ds.Bid{Wherefrom: "Минск", Towhere: "Гомель", Weight: &weight}
	require.NoError(t, repo.CreateBid(&bid))
	defer repo.db.Delete(&ds.Bid{}, bid.ID)

	truck := ds.Truck{
		Model:        "МАЗ-5440",
		LicensePlate: fmt.Sprintf("TEST %d", time.Now().UnixNano()),
		CapacityKg:   20000,
	}
	require.NoError(t, repo.CreateTruck(&truck))
	defer repo.db.Delete(&ds.Truck{}, truck.ID)

	assigned, err := repo.AssignTruckToBid(bid.ID, truck.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTruckID)

	cancelled, err := repo.UpdateBidStatus(bid.ID, ds.StatusCancelled)
	require.NoError(t, err)
	assert.Nil(t, cancelled.AssignedTruckID)

	// и в БД ссылки больше нет
	stored, err := repo.GetBidByID(bid.ID)
	require.NoError(t, err)
	assert.Equal(t, ds.StatusCancelled, stored.Status)
	assert.Nil(t, stored.AssignedTruckID)

	released, err := repo.GetTruckByID(truck.ID)
	require.NoError(t, err)
	assert.Equal(t, ds.TruckAvailable, released.Status)
}
