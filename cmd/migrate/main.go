package main

import (
	"log"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dsn"
	"cargotrans/internal/app/role"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Bid{},
		&ds.Truck{},
		&ds.Contact{},
		&ds.Calculation{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	seedUsers(db)
	seedTrucks(db)
}

// seedUsers создаёт администратора и тестового клиента, если их ещё нет
func seedUsers(db *gorm.DB) {
	users := []struct {
		login    string
		password string
		role     role.Role
	}{
		{"admin", "admin123", role.Admin},
		{"test", "123456", role.Client},
	}

	for _, u := range users {
		var count int64
		db.Model(&ds.User{}).Where("login = ?", u.login).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		err = db.Create(&ds.User{
			Login:    u.login,
			Password: string(hash),
			Role:     u.role,
		}).Error
		if err != nil {
			log.Printf("Failed to create user %s: %v", u.login, err)
			continue
		}
		log.Printf("Created user %s", u.login)
	}
}

// seedTrucks добавляет демонстрационный транспорт в пустой реестр
func seedTrucks(db *gorm.DB) {
	var count int64
	db.Model(&ds.Truck{}).Count(&count)
	if count > 0 {
		return
	}

	trucks := []ds.Truck{
		{Model: "МАЗ-5440", LicensePlate: "AB 1234-7", CapacityKg: 20000, Status: ds.TruckAvailable},
		{Model: "ГАЗель NEXT", LicensePlate: "AK 5678-5", CapacityKg: 1500, Status: ds.TruckAvailable},
		{Model: "Volvo FH", LicensePlate: "AE 9012-3", CapacityKg: 25000, Status: ds.TruckAvailable},
	}

	for _, t := range trucks {
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Failed to create truck %s: %v", t.Model, err)
		}
	}
	log.Println("Demo trucks created")
}
