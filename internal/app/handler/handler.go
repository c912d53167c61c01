package handler

import (
	"errors"
	"net/http"

	"cargotrans/internal/app/config"
	"cargotrans/internal/app/dto"
	"cargotrans/internal/app/repository"
	"cargotrans/internal/app/role"
	"cargotrans/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
	Config      *config.Config
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler, cfg *config.Config) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
		Config:      cfg,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Client, errors.New("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, errors.New("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// domainError переводит доменную ошибку репозитория в HTTP-ответ
func (h *APIHandler) domainError(c *gin.Context, err error) {
	logrus.Error(err.Error())

	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInvalidStatus),
		errors.Is(err, repository.ErrInvalidTransition),
		errors.Is(err, repository.ErrCapacityExceeded),
		errors.Is(err, repository.ErrLoginTaken),
		errors.Is(err, repository.ErrPlateTaken):
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrTruckUnavailable):
		h.errorResponse(c, http.StatusConflict, err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}
