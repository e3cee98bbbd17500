package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

const (
	defaultLimit         = 50
	maxLimit             = 100
	defaultSortColumn    = "name"
	defaultSortDirection = "ASC"
)

// ParsePagination safely parses and validates offset and limit query parameters.
// It uses default values of 0 for offset and 50 for limit.
// The limit cannot exceed 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxLimit)
	}

	return offset, limit, nil
}

// ParseListParams reads search, sort_column, sort_direction, offset and limit
// from the query string. Sorting defaults to name ascending.
func ParseListParams(c *gin.Context) (tspDomain.ListParams, error) {
	offset, limit, err := ParsePagination(c)
	if err != nil {
		return tspDomain.ListParams{}, err
	}

	return tspDomain.NewListParams(
		c.Query("search"),
		c.DefaultQuery("sort_column", defaultSortColumn),
		c.DefaultQuery("sort_direction", defaultSortDirection),
		limit,
		offset,
	)
}
