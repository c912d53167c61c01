package handler

import (
	"net/http"

	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН КОНТАКТЫ ============

// GetContacts получает обращения с формы контактов
// @Summary Список обращений
// @Tags Contacts
// @Produce json
// @Success 200 {array} ds.Contact
// @Router /api/contacts [get]
func (h *APIHandler) GetContacts(c *gin.Context) {
	contacts, err := h.Repository.GetContacts()
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// CreateContact сохраняет обращение с формы контактов
// @Summary Новое обращение
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Данные обращения"
// @Success 201 {object} ds.Contact
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/contacts [post]
func (h *APIHandler) CreateContact(c *gin.Context) {
	var request dto.CreateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	contact := ds.Contact{
		Phone:   request.Phone,
		Email:   request.Email,
		Name:    request.Name,
		Subject: request.Subject,
		Message: request.Message,
	}

	if err := h.Repository.CreateContact(&contact); err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}
