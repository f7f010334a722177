package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newThrottledRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Throttle(rps, burst))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestThrottleExhaustsBurst(t *testing.T) {
	r := newThrottledRouter(1, 2)

	assert.Equal(t, http.StatusOK, doRequest(r, "1.2.3.4:1000").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "1.2.3.4:1000").Code)
	// 桶空了
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "1.2.3.4:1000").Code)
}

func TestThrottleKeyedPerClient(t *testing.T) {
	r := newThrottledRouter(1, 1)

	assert.Equal(t, http.StatusOK, doRequest(r, "1.2.3.4:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "1.2.3.4:1000").Code)
	// 另一个客户端有自己的桶
	assert.Equal(t, http.StatusOK, doRequest(r, "5.6.7.8:2000").Code)
}
