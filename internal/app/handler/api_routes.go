package handler

import (
	"time"

	"cargotrans/internal/app/middleware"
	"cargotrans/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Публичные эндпоинты ============
	api.POST("/register", h.AuthHandler.RegisterUser)
	api.POST("/login", h.AuthHandler.LoginUser)
	api.POST("/calculate", authMiddleware.WithOptionalAuth(), h.Calculate)

	contacts := api.Group("/contacts")
	{
		contacts.GET("", h.GetContacts)
		contacts.POST("", h.CreateContact)
	}

	// ============ Заявки ============
	bids := api.Group("/bids")
	{
		// Для авторизованных пользователей
		bids.GET("", authMiddleware.WithAuthCheck(role.Client, role.Manager, role.Admin), h.GetBids)
		bids.POST("", authMiddleware.WithAuthCheck(role.Client, role.Manager, role.Admin), h.CreateBid)
		bids.POST("/:id/cancel", authMiddleware.WithAuthCheck(role.Client, role.Manager, role.Admin), h.CancelBid)

		// Только для администратора
		bids.PATCH("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateBidStatus)
		bids.POST("/:id/assign", authMiddleware.WithAuthCheck(role.Admin), h.AssignTruck)
	}

	// ============ Транспорт (только администратор) ============
	trucks := api.Group("/trucks")
	trucks.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		trucks.GET("", h.GetTrucks)
		trucks.POST("", h.CreateTruck)
		trucks.DELETE("/:id", h.DeleteTruck)
		trucks.POST("/:id/image", h.UploadTruckImage)
	}

	// ============ Админ-панель ============
	admin := api.Group("/admin")
	admin.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		admin.GET("/stats", h.GetStats)
		admin.GET("/suggestions", h.GetSuggestions)
	}

	// ============ Профиль и сеанс ============
	user := api.Group("/user")
	user.Use(authMiddleware.WithAuthCheck(role.Client, role.Manager, role.Admin))
	{
		user.GET("/profile", h.AuthHandler.GetUserProfile)
		user.PATCH("/profile", h.AuthHandler.UpdateProfile)
	}
	api.POST("/logout", authMiddleware.WithAuthCheck(role.Client, role.Manager, role.Admin), h.AuthHandler.LogoutUser)

	// ============ История расчётов ============
	api.GET("/calculations", authMiddleware.WithAuthCheck(role.Client, role.Manager, role.Admin), h.GetCalculations)

	// Health-эндпоинт для проверки
	api.GET("/health", h.Health)
}

// Health проверяет работоспособность API
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "OK",
		"message":   "Сервер работает",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
