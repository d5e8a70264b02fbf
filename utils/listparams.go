package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListParams holds the parsed pagination, sorting and search parameters
// shared by the list endpoints.
type ListParams struct {
	Page          int
	PageSize      int
	Search        string
	SortColumn    string
	SortDirection string
}

// ParseListParams reads page/pageSize/search/sortColumn/sortDirection from
// the query string. Page and pageSize are clamped to sane bounds; the sort
// column must be in the allowed set or the default is used, so the order
// clause never interpolates caller-controlled SQL.
func ParseListParams(c *gin.Context, allowedSortColumns map[string]bool, defaultSortColumn string) ListParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	sortColumn := c.Query("sortColumn")
	if !allowedSortColumns[sortColumn] {
		sortColumn = defaultSortColumn
	}

	sortDirection := c.Query("sortDirection")
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	return ListParams{
		Page:          page,
		PageSize:      pageSize,
		Search:        c.Query("search"),
		SortColumn:    sortColumn,
		SortDirection: sortDirection,
	}
}

// Offset returns the row offset for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// OrderClause returns the SQL order clause for the parsed sort parameters.
func (p ListParams) OrderClause() string {
	return fmt.Sprintf("%s %s", p.SortColumn, p.SortDirection)
}

// TotalPages computes the page count for a total item count.
func TotalPages(totalItems int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	pages := int(totalItems) / pageSize
	if int(totalItems)%pageSize != 0 {
		pages++
	}
	return pages
}
