package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pageParams reads page/page_size query parameters and converts them to an
// offset/limit pair. Page numbering starts at 1; page_size is capped at 100.
func pageParams(c echo.Context) (offset, limit int) {
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}

	limit = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return (page - 1) * limit, limit
}
