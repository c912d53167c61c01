package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cargotrans/internal/app/config"
	"cargotrans/internal/app/ds"
	"cargotrans/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:        testSecret,
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
			Issuer:        "cargotrans",
		},
	}
}

func signToken(t *testing.T, userID uint, login string, userRole role.Role, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "cargotrans",
		},
		UserID: userID,
		Login:  login,
		Role:   userRole,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupRouter(roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)

	am := NewAuthMiddleware(nil, testConfig())
	r := gin.New()
	r.GET("/protected", am.WithAuthCheck(roles...), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		userLogin, _ := c.Get("userLogin")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "login": userLogin})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck_NoToken(t *testing.T) {
	r := setupRouter(role.Client)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_GarbageToken(t *testing.T) {
	r := setupRouter(role.Client)

	w := doRequest(r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_ExpiredToken(t *testing.T) {
	r := setupRouter(role.Client)

	token := signToken(t, 1, "test", role.Client, -time.Hour)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_WrongSecret(t *testing.T) {
	r := setupRouter(role.Client)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
		UserID:         1,
		Login:          "test",
		Role:           role.Client,
	})
	signed, err := token.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuthCheck_ValidToken(t *testing.T) {
	r := setupRouter(role.Client)

	token := signToken(t, 7, "test", role.Client, time.Hour)
	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"login":"test"`)
}

func TestWithAuthCheck_TokenWithoutBearerPrefix(t *testing.T) {
	r := setupRouter(role.Client)

	token := signToken(t, 7, "test", role.Client, time.Hour)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithAuthCheck_ClientOnAdminRoute(t *testing.T) {
	r := setupRouter(role.Admin)

	token := signToken(t, 7, "test", role.Client, time.Hour)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithAuthCheck_AdminOnAdminRoute(t *testing.T) {
	r := setupRouter(role.Admin)

	token := signToken(t, 1, "admin", role.Admin, time.Hour)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithAuthCheck_AnyOfSeveralRoles(t *testing.T) {
	r := setupRouter(role.Client, role.Manager, role.Admin)

	for _, userRole := range []role.Role{role.Client, role.Manager, role.Admin} {
		token := signToken(t, 1, "user", userRole, time.Hour)
		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code, "role %s", userRole)
	}
}

func TestWithOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	am := NewAuthMiddleware(nil, testConfig())
	r := gin.New()
	r.GET("/public", am.WithOptionalAuth(), func(c *gin.Context) {
		if userID, exists := c.Get("userID"); exists {
			c.JSON(http.StatusOK, gin.H{"user_id": userID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": nil})
	})

	// без токена запрос проходит как анонимный
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":null`)

	// битый токен не роняет запрос
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":null`)

	// с токеном пользователь подставляется в контекст
	token := signToken(t, 9, "test", role.Client, time.Hour)
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":9`)
}
