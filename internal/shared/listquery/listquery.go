// Package listquery parses the pagination/search/sort query parameters
// every list endpoint shares.
package listquery

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// Parse reads page/limit/search/sort_by/sort_order with the platform
// defaults. defaultSortBy is entity-specific (usually "created_at").
func Parse(c *gin.Context, defaultSortBy string) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = DefaultPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortBy := strings.TrimSpace(c.DefaultQuery("sort_by", defaultSortBy))
	sortOrder := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_order", "desc")))
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	return Params{
		Page:      page,
		Limit:     limit,
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SortColumn returns SortBy when it names one of the allowed columns and
// fallback otherwise. Repositories must route sort_by through this so
// request input never reaches the SQL or sort-document text verbatim.
func (p Params) SortColumn(fallback string, allowed ...string) string {
	for _, col := range allowed {
		if p.SortBy == col {
			return col
		}
	}
	return fallback
}

// OrderClause builds the ORDER BY expression from the whitelisted column
// and the already-normalized sort order.
func (p Params) OrderClause(fallback string, allowed ...string) string {
	return p.SortColumn(fallback, allowed...) + " " + p.SortOrder
}
