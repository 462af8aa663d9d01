package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subscription-automation-engine/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubVerifier accepts a single well-known token.
type stubVerifier struct{}

func (stubVerifier) Validate(token string) (string, error) {
	if token == "valid-token" {
		return "billing-admin", nil
	}
	return "", errors.New("invalid token")
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/internal/test", middleware.ServiceTokenAuth(stubVerifier{}, zerolog.Nop()), func(c *gin.Context) {
		svc, _ := c.Get(middleware.CtxServiceName)
		c.JSON(200, gin.H{"service": svc})
	})
	return r
}

func TestServiceTokenAuth_ValidToken(t *testing.T) {
	router := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/internal/test", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "billing-admin")
}

func TestServiceTokenAuth_MissingHeader(t *testing.T) {
	router := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/internal/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SIG_003")
}

func TestServiceTokenAuth_BadToken(t *testing.T) {
	router := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/internal/test", nil)
	req.Header.Set("Authorization", "Bearer forged")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecovery_CatchesPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/panic", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestMaxBodySize_RejectsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.MaxBodySize(16))
	r.POST("/echo", func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(http.StatusOK, payload)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"key":"`+strings.Repeat("x", 100)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
