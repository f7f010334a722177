package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LouisLau-art/indie-board/internal/config"
	"github.com/LouisLau-art/indie-board/internal/db"
	"github.com/LouisLau-art/indie-board/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	gdb, err := db.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	cfg := &config.Config{ThrottleRPS: 100, ThrottleBurst: 100}
	r := gin.New()
	RegisterRoutes(r, services.NewProductService(gdb, cfg.DedupDisabled), cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// 写接口也已挂上（非法 id 走到 handler 而不是 404 路由）
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/products/abc/vote", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
