package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dto"
	"cargotrans/internal/app/pricing"
	"cargotrans/internal/app/repository"
	"cargotrans/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ЗАЯВКИ ============

// GetBids получает список заявок
// @Summary Список заявок
// @Description Свои заявки при mine=true, все заявки — только для администратора. Фильтры по статусу и подстроке поиска
// @Tags Bids
// @Produce json
// @Security BearerAuth
// @Param mine query bool false "Только заявки текущего пользователя"
// @Param status query string false "Фильтр по статусу"
// @Param query query string false "Поиск по id и городам"
// @Success 200 {array} ds.Bid
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/bids [get]
func (h *APIHandler) GetBids(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	onlyMine := strings.EqualFold(c.Query("mine"), "true")
	if !onlyMine && userRole != role.Admin {
		h.errorResponse(c, http.StatusForbidden, "просмотр всех заявок доступен только администратору")
		return
	}

	filter := repository.BidFilter{
		Status: ds.BidStatus(c.Query("status")),
		Search: c.Query("query"),
	}
	if onlyMine {
		filter.UserID = &userID
	}
	if filter.Status != "" && !ds.IsValidStatus(filter.Status) {
		h.errorResponse(c, http.StatusBadRequest, repository.ErrInvalidStatus.Error())
		return
	}

	bids, err := h.Repository.GetBids(filter)
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bids)
}

// CreateBid создаёт заявку на перевозку
// @Summary Создание заявки
// @Description Создаёт заявку в статусе "новая" от имени текущего пользователя
// @Tags Bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBidRequest true "Данные заявки"
// @Success 201 {object} ds.Bid
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/bids [post]
func (h *APIHandler) CreateBid(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var request dto.CreateBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// валидатор пропускает явный ноль в указателе, проверяем сами
	if request.Weight != nil && *request.Weight <= 0 {
		h.errorResponse(c, http.StatusBadRequest, pricing.ErrNonPositiveWeight.Error())
		return
	}

	bid := ds.Bid{
		Name:      request.Name,
		Wherefrom: request.Wherefrom,
		Towhere:   request.Towhere,
		UserID:    &userID,
		Weight:    request.Weight,
		Type:      request.Type,
		Date:      request.Date,
	}

	if err := h.Repository.CreateBid(&bid); err != nil {
		logrus.Error("Error creating bid: ", err)
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}

// UpdateBidStatus меняет статус заявки (админ)
// @Summary Смена статуса заявки
// @Description Переводит заявку в новый статус с проверкой допустимости перехода
// @Tags Bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param request body dto.UpdateBidStatusRequest true "Новый статус"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bids/{id} [patch]
func (h *APIHandler) UpdateBidStatus(c *gin.Context) {
	bidID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID заявки")
		return
	}

	var request dto.UpdateBidStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	bid, err := h.Repository.UpdateBidStatus(uint(bidID), ds.BidStatus(request.Status))
	if err != nil {
		h.domainError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "статус обновлен", bid)
}

// CancelBid отменяет заявку её владельцем
// @Summary Отмена заявки
// @Description Отменить можно только свою заявку в статусе "новая"
// @Tags Bids
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bids/{id}/cancel [post]
func (h *APIHandler) CancelBid(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	bidID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID заявки")
		return
	}

	bid, err := h.Repository.CancelBid(uint(bidID), userID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			h.errorResponse(c, http.StatusBadRequest, "отменить можно только новую заявку")
			return
		}
		h.domainError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "заявка отменена", bid)
}

// AssignTruck назначает транспорт на заявку (админ)
// @Summary Назначение транспорта
// @Description Связывает свободный транспорт с новой заявкой при достаточной грузоподъёмности
// @Tags Bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Param request body dto.AssignTruckRequest true "ID транспорта"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/bids/{id}/assign [post]
func (h *APIHandler) AssignTruck(c *gin.Context) {
	bidID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "неверный ID заявки")
		return
	}

	var request dto.AssignTruckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	bid, err := h.Repository.AssignTruckToBid(uint(bidID), request.TruckID)
	if err != nil {
		h.domainError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "транспорт назначен", bid)
}
