package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ============ АДМИН-ПАНЕЛЬ ============

// GetStats возвращает статистику для админ-панели
// @Summary Статистика
// @Description Количество заявок по статусам, пользователей и свободного транспорта
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repository.Stats
// @Router /api/admin/stats [get]
func (h *APIHandler) GetStats(c *gin.Context) {
	stats, err := h.Repository.GetStats()
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetSuggestions возвращает подбор транспорта под новые заявки
// @Summary Подбор транспорта
// @Description Для каждой новой заявки — свободный транспорт достаточной грузоподъёмности
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.Suggestion
// @Router /api/admin/suggestions [get]
func (h *APIHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.Repository.GetSuggestions()
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
