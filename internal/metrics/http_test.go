package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_RecordsRoutePattern", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "test_app"))
		router.GET("/v1/approved-tsps/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})
		router.POST("/v1/approved-tsps", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation_error"})
		})

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/approved-tsps/1"))
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/approved-tsps/2"))
		assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPost, "/v1/approved-tsps"))
		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/nope"))

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `test_app_http_requests_total`,
			`method="GET".*path="/v1/approved-tsps/:id".*status_code="200"`, `2`)
		assertBizMetricLine(t, output, `test_app_http_requests_total`,
			`method="POST".*path="/v1/approved-tsps".*status_code="422"`, `1`)
		assertBizMetricLine(t, output, `test_app_http_requests_total`,
			`path="unknown".*status_code="404"`, `1`)
	})

	t.Run("Success_SkipsProbes", func(t *testing.T) {
		provider, err := NewProvider("probe_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		router := gin.New()
		router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "probe_app", "/health", "/ready"))
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.GET("/v1/approved-tsps", func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health"))
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/v1/approved-tsps"))

		output := scrape(t, provider)
		assert.NotContains(t, output, `path="/health"`)
		assertBizMetricLine(t, output, `probe_app_http_requests_total`, `path="/v1/approved-tsps"`, `1`)
	})
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/v1/approved-tsps/:id", expected: "/v1/approved-tsps/:id"},
		{name: "EmptyPath", input: "", expected: "unknown"},
		{name: "RootPath", input: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
