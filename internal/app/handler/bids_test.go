package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargotrans/internal/app/dto"
	"cargotrans/internal/app/repository"
	"cargotrans/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func setupBidRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAPIHandler(&repository.Repository{}, nil, nil, nil)
	r := gin.New()
	r.POST("/api/bids", func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("userRole", role.Client)
	}, h.CreateBid)
	return r
}

func postBid(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/bids", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBid_ValidationErrors(t *testing.T) {
	r := setupBidRouter()

	tests := []struct {
		name string
		body dto.CreateBidRequest
	}{
		{"нет городов", dto.CreateBidRequest{Weight: floatPtr(100)}},
		{"нет пункта назначения", dto.CreateBidRequest{Wherefrom: "Минск", Weight: floatPtr(100)}},
		{"нулевой вес", dto.CreateBidRequest{Wherefrom: "Минск", Towhere: "Гомель", Weight: floatPtr(0)}},
		{"отрицательный вес", dto.CreateBidRequest{Wherefrom: "Минск", Towhere: "Гомель", Weight: floatPtr(-10)}},
		{"неизвестный тип груза", dto.CreateBidRequest{Wherefrom: "Минск", Towhere: "Гомель", Type: strPtr("radioactive")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postBid(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "fail", resp.Status)
		})
	}
}

func TestCreateBid_ZeroWeightMessage(t *testing.T) {
	r := setupBidRouter()

	w := postBid(t, r, dto.CreateBidRequest{Wherefrom: "Минск", Towhere: "Гомель", Weight: floatPtr(0)})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "вес груза")
}
