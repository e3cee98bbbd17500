package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/tsp-registry/internal/httputil"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

func newQueryContext(url string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		expectError    bool
		errorMsg       string
	}{
		{
			name:           "default values",
			url:            "/",
			expectedOffset: 0,
			expectedLimit:  50,
		},
		{
			name:           "valid custom values",
			url:            "/?offset=10&limit=20",
			expectedOffset: 10,
			expectedLimit:  20,
		},
		{
			name:           "max limit",
			url:            "/?limit=100",
			expectedOffset: 0,
			expectedLimit:  100,
		},
		{
			name:        "offset negative",
			url:         "/?offset=-1",
			expectError: true,
			errorMsg:    "invalid offset parameter: must be a non-negative integer",
		},
		{
			name:        "offset not a number",
			url:         "/?offset=abc",
			expectError: true,
			errorMsg:    "invalid offset parameter: must be a non-negative integer",
		},
		{
			name:        "limit zero",
			url:         "/?limit=0",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:        "limit too large",
			url:         "/?limit=101",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit, err := httputil.ParsePagination(newQueryContext(tt.url))

			if tt.expectError {
				assert.EqualError(t, err, tt.errorMsg)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestParseListParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Defaults", func(t *testing.T) {
		params, err := httputil.ParseListParams(newQueryContext("/"))

		require.NoError(t, err)
		assert.Equal(t, tspDomain.ListParams{
			SortColumn:    tspDomain.SortByName,
			SortDirection: tspDomain.Ascending,
			Limit:         50,
		}, params)
	})

	t.Run("AllParameters", func(t *testing.T) {
		params, err := httputil.ParseListParams(
			newQueryContext("/?search=Test&sort_column=valid_to&sort_direction=desc&limit=10&offset=5"),
		)

		require.NoError(t, err)
		assert.Equal(t, tspDomain.ListParams{
			Search:        "Test",
			SortColumn:    tspDomain.SortByValidTo,
			SortDirection: tspDomain.Descending,
			Limit:         10,
			Offset:        5,
		}, params)
	})

	t.Run("InvalidSortColumn", func(t *testing.T) {
		_, err := httputil.ParseListParams(newQueryContext("/?sort_column=certificate"))
		assert.ErrorIs(t, err, tspDomain.ErrInvalidSortColumn)
	})

	t.Run("InvalidSortDirection", func(t *testing.T) {
		_, err := httputil.ParseListParams(newQueryContext("/?sort_direction=sideways"))
		assert.ErrorIs(t, err, tspDomain.ErrInvalidSortDirection)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		_, err := httputil.ParseListParams(newQueryContext("/?limit=500"))
		assert.Error(t, err)
	})
}
