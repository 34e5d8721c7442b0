package handler

import (
	"net/http"
	"strconv"

	"pharmacenter-api/pkg/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination reads page/limit query parameters with sane bounds.
func parsePagination(r *http.Request) (page, limit, offset int) {
	page = 1
	limit = defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit, (page - 1) * limit
}

// paginationMeta builds the list envelope metadata.
func paginationMeta(page, limit int, total int64) *response.Meta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
