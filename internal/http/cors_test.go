package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only separators", " , ,", nil},
		{"single", "https://admin.example.com", []string{"https://admin.example.com"}},
		{
			"trimmed list",
			" https://admin.example.com , https://ops.example.com ",
			[]string{"https://admin.example.com", "https://ops.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.input))
		})
	}
}

func TestCreateCORSMiddleware_Disabled(t *testing.T) {
	assert.Nil(t, createCORSMiddleware(false, "https://admin.example.com", discardLogger()))
	assert.Nil(t, createCORSMiddleware(true, "", discardLogger()))
	assert.Nil(t, createCORSMiddleware(true, " , ", discardLogger()))
}

// newCORSRouter serves a fake certificate download behind the CORS middleware.
func newCORSRouter(t *testing.T, origins string) *gin.Engine {
	t.Helper()

	middleware := createCORSMiddleware(true, origins, discardLogger())
	require.NotNil(t, middleware)

	router := gin.New()
	router.Use(middleware)
	router.GET("/v1/approved-tsps/:id/certificate", func(c *gin.Context) {
		c.Header("Content-Disposition", `attachment; filename="x.cer"`)
		c.Data(http.StatusOK, "application/pkix-cert", []byte{0x30})
	})
	router.PUT("/v1/approved-tsps/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := newCORSRouter(t, "https://admin.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/approved-tsps/x/certificate", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOriginRejected(t *testing.T) {
	router := newCORSRouter(t, "https://admin.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/approved-tsps/x/certificate", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightForUpdate(t *testing.T) {
	router := newCORSRouter(t, "https://admin.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/approved-tsps/x", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}
