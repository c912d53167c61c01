package handler

import (
	"io"
	"net/http"
	"strconv"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ТРАНСПОРТ ============

// GetTrucks получает список транспорта (админ)
// @Summary Список транспорта
// @Tags Trucks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.Truck
// @Router /api/trucks [get]
func (h *APIHandler) GetTrucks(c *gin.Context) {
	trucks, err := h.Repository.GetAllTrucks()
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, trucks)
}

// CreateTruck регистрирует транспорт (админ)
// @Summary Регистрация транспорта
// @Tags Trucks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTruckRequest true "Данные транспорта"
// @Success 201 {object} ds.Truck
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/trucks [post]
func (h *APIHandler) CreateTruck(c *gin.Context) {
	var request dto.CreateTruckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	truck := ds.Truck{
		Model:        request.Model,
		LicensePlate: request.LicensePlate,
		CapacityKg:   request.CapacityKg,
	}

	if err := h.Repository.CreateTruck(&truck); err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, truck)
}

// DeleteTruck удаляет транспорт (админ)
// @Summary Удаление транспорта
// @Tags Trucks
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID транспорта"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trucks/{id} [delete]
func (h *APIHandler) DeleteTruck(c *gin.Context) {
	truckID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID транспорта")
		return
	}

	truck, err := h.Repository.GetTruckByID(uint(truckID))
	if err != nil {
		h.domainError(c, err)
		return
	}

	// Фото в MinIO подчищаем вместе с записью
	if truck.ImageURL != nil && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(*truck.ImageURL); err != nil {
			logrus.Warn("Error deleting truck image: ", err)
		}
	}

	if err := h.Repository.DeleteTruck(uint(truckID)); err != nil {
		h.domainError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "транспорт удален", nil)
}

// UploadTruckImage загружает фото транспорта в MinIO (админ)
// @Summary Фото транспорта
// @Tags Trucks
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID транспорта"
// @Param image formData file true "Изображение"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/trucks/{id}/image [post]
func (h *APIHandler) UploadTruckImage(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "файловое хранилище не настроено")
		return
	}

	truckID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID транспорта")
		return
	}

	if _, err := h.Repository.GetTruckByID(uint(truckID)); err != nil {
		h.domainError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "файл изображения не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "не удалось открыть файл")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "не удалось прочитать файл")
		return
	}

	imageURL, err := h.MinIOClient.UploadFile(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading truck image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка загрузки изображения")
		return
	}

	if err := h.Repository.UpdateTruckImage(uint(truckID), imageURL); err != nil {
		h.domainError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "изображение загружено", gin.H{"image_url": imageURL})
}
