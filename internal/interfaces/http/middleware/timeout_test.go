// internal/interfaces/http/middleware/timeout_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/config"
)

func newTimeoutRouter(requestTimeout, handlerDelay time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{RequestTimeout: requestTimeout},
	}

	router := gin.New()
	router.Use(Timeout(cfg))
	router.GET("/slow", func(c *gin.Context) {
		select {
		case <-time.After(handlerDelay):
			c.JSON(http.StatusOK, gin.H{"message": "done"})
		case <-c.Request.Context().Done():
		}
	})
	return router
}

func TestTimeout_FastRequestPasses(t *testing.T) {
	router := newTimeoutRouter(time.Second, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "done")
}

func TestTimeout_SlowRequestTimesOut(t *testing.T) {
	router := newTimeoutRouter(20*time.Millisecond, time.Second)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}
