package handler

import (
	"errors"
	"net/http"
	"time"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dto"
	"cargotrans/internal/app/pricing"

	"github.com/gin-gonic/gin"
)

// ============ КАЛЬКУЛЯТОР СТОИМОСТИ ============

// Calculate рассчитывает стоимость перевозки
// @Summary Калькулятор стоимости
// @Description Расчёт стоимости по расстоянию, весу и типу груза. Расстояние можно не передавать — тогда оно берётся из матрицы городов
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Параметры расчёта"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/calculate [post]
func (h *APIHandler) Calculate(c *gin.Context) {
	var request dto.CalculateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	distance := pricing.Distance(request.From, request.To)
	if request.Distance != nil {
		distance = *request.Distance
	}

	cargoType := pricing.CargoType(request.Type)
	if request.Type == "" {
		cargoType = pricing.Ordinary
	}

	cost, err := pricing.Compute(distance, request.Weight, cargoType)
	if err != nil {
		if errors.Is(err, pricing.ErrNonPositiveDistance) || errors.Is(err, pricing.ErrNonPositiveWeight) {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Расчёт пишем в журнал; пользователь подставляется, если есть токен
	calc := ds.Calculation{
		From:       request.From,
		To:         request.To,
		DistanceKm: distance,
		WeightKg:   request.Weight,
		Type:       string(cargoType),
		Cost:       cost.TotalCost,
	}
	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(uint); ok {
			calc.UserID = &id
		}
	}
	h.Repository.SaveCalculation(&calc)

	c.JSON(http.StatusOK, dto.CalculateResponse{
		From:       request.From,
		To:         request.To,
		DistanceKm: distance,
		WeightKg:   request.Weight,
		Type:       string(cargoType),
		TypeName:   cost.TypeName,
		BaseCost:   cost.BaseCost,
		WeightCost: cost.WeightCost,
		TypeCost:   cost.TypeCost,
		TotalCost:  cost.TotalCost,
		Multiplier: cost.Multiplier,
		Timestamp:  time.Now(),
	})
}

// GetCalculations возвращает историю расчётов пользователя
// @Summary История расчётов
// @Tags Calculator
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.Calculation
// @Router /api/calculations [get]
func (h *APIHandler) GetCalculations(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	calcs, err := h.Repository.GetUserCalculations(userID)
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, calcs)
}
