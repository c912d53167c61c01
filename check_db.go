package main

import (
	"fmt"
	"log"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var trucks []ds.Truck
	err = db.Find(&trucks).Error
	if err != nil {
		log.Fatal("Failed to get trucks:", err)
	}

	fmt.Println("Trucks in database:")
	for _, truck := range trucks {
		fmt.Printf("ID: %d, Model: %s, Plate: %s, Capacity: %.0f kg, Status: %s\n",
			truck.ID, truck.Model, truck.LicensePlate, truck.CapacityKg, truck.Status)
	}
}
