package repository

import (
	"fmt"

	"cargotrans/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB

	// возвращать ли транспорт в available при закрытии заявки (см. config)
	releaseTruckOnClose bool

	// запасное хранилище истории расчётов на случай недоступности БД
	history historyFallback
}

func New(dsn string, releaseTruckOnClose bool) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Bid{},
		&ds.Truck{},
		&ds.Contact{},
		&ds.Calculation{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db:                  db,
		releaseTruckOnClose: releaseTruckOnClose,
	}, nil
}
