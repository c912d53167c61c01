package api

import (
	"context"

	"cargotrans/internal/app/config"
	"cargotrans/internal/app/dsn"
	"cargotrans/internal/app/handler"
	"cargotrans/internal/app/middleware"
	"cargotrans/internal/app/redis"
	"cargotrans/internal/app/repository"
	"cargotrans/internal/app/storage"
	"cargotrans/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	logrus.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка загрузки конфигурации: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv(), cfg.ReleaseTruckOnClose)
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	// Redis нужен только для blacklist токенов, без него сервис работает
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logrus.Warnf("Redis недоступен, blacklist токенов отключен: %v", err)
			redisClient = nil
		}
	}

	// MinIO нужен только для фото транспорта
	var minioClient *storage.MinIOClient
	if cfg.Minio.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey,
			cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Warnf("MinIO недоступен, загрузка фото отключена: %v", err)
			minioClient = nil
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler, cfg)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, r, apiHandler, authMiddleware)
	app.RunApp()
}
