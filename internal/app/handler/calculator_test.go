package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargotrans/internal/app/dto"
	"cargotrans/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Калькулятор не требует подключения к БД: при её отсутствии история
// расчётов уходит в запасное хранилище в памяти, поэтому обработчик
// можно тестировать на чистом httptest.

func setupCalculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAPIHandler(&repository.Repository{}, nil, nil, nil)
	r := gin.New()
	r.POST("/api/calculate", h.Calculate)
	r.GET("/api/health", h.Health)
	return r
}

func postCalculate(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculate_MinskGomel(t *testing.T) {
	r := setupCalculatorRouter()

	w := postCalculate(t, r, dto.CalculateRequest{
		From:   "Минск",
		To:     "Гомель",
		Weight: 1000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// расстояние взято из матрицы городов
	assert.Equal(t, float64(310), resp.DistanceKm)
	assert.Equal(t, float64(775), resp.BaseCost)
	assert.Equal(t, float64(150), resp.WeightCost)
	assert.Equal(t, float64(0), resp.TypeCost)
	assert.Equal(t, float64(925), resp.TotalCost)
	assert.Equal(t, "ordinary", resp.Type)
}

func TestCalculate_ExplicitDistanceAndType(t *testing.T) {
	r := setupCalculatorRouter()

	distance := float64(100)
	w := postCalculate(t, r, dto.CalculateRequest{
		From:     "Минск",
		To:       "Гомель",
		Weight:   500,
		Type:     "dangerous",
		Distance: &distance,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// явно переданное расстояние важнее матрицы
	assert.Equal(t, float64(100), resp.DistanceKm)
	assert.Equal(t, float64(250), resp.BaseCost)
	assert.Equal(t, float64(75), resp.WeightCost)
	assert.Equal(t, float64(390), resp.TypeCost)
	assert.Equal(t, float64(715), resp.TotalCost)
	assert.Equal(t, 2.2, resp.Multiplier)
}

func TestCalculate_UnknownCitiesUseDefaultDistance(t *testing.T) {
	r := setupCalculatorRouter()

	w := postCalculate(t, r, dto.CalculateRequest{
		From:   "Урюпинск",
		To:     "Мухосранск",
		Weight: 100,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(250), resp.DistanceKm)
}

func TestCalculate_ValidationErrors(t *testing.T) {
	r := setupCalculatorRouter()

	tests := []struct {
		name string
		body dto.CalculateRequest
	}{
		{"нет городов", dto.CalculateRequest{Weight: 100}},
		{"нет веса", dto.CalculateRequest{From: "Минск", To: "Гомель"}},
		{"отрицательный вес", dto.CalculateRequest{From: "Минск", To: "Гомель", Weight: -5}},
		{"неизвестный тип груза", dto.CalculateRequest{From: "Минск", To: "Гомель", Weight: 100, Type: "radioactive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCalculate(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "fail", resp.Status)
		})
	}
}

func TestHealth(t *testing.T) {
	r := setupCalculatorRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
}
