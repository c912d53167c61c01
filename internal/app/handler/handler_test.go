package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargotrans/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAPIHandler(&repository.Repository{}, nil, nil, nil)

	tests := []struct {
		err  error
		code int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{repository.ErrLoginTaken, http.StatusBadRequest},
		{repository.ErrPlateTaken, http.StatusBadRequest},
		{repository.ErrInvalidStatus, http.StatusBadRequest},
		{repository.ErrInvalidTransition, http.StatusBadRequest},
		{repository.ErrCapacityExceeded, http.StatusBadRequest},
		{repository.ErrTruckUnavailable, http.StatusConflict},
		// обёрнутая ошибка распознаётся через errors.Is
		{fmt.Errorf("%w: новая -> выполнена", repository.ErrInvalidTransition), http.StatusBadRequest},
		{errors.New("database is down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.domainError(c, tt.err)
		assert.Equal(t, tt.code, w.Code, "error %v", tt.err)
	}
}
