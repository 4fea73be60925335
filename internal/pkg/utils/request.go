package utils

import (
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

// BuildPaginationRequest reads page, limit, sortBy and sortOrder. A sortBy
// outside sortableFields falls back to defaultSortBy.
func BuildPaginationRequest(r *http.Request, sortableFields []string, defaultSortBy, defaultSortOrder string) requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.PaginationDefaultPage
	}

	limit, err := strconv.Atoi(query.Get(constvars.URLQueryParamLimit))
	if err != nil || limit <= 0 {
		limit = constvars.PaginationDefaultLimit
	}
	if limit > constvars.PaginationMaxLimit {
		limit = constvars.PaginationMaxLimit
	}

	sortBy := query.Get(constvars.URLQueryParamSortBy)
	if !containsString(sortableFields, sortBy) {
		sortBy = defaultSortBy
	}

	sortOrder := strings.ToLower(query.Get(constvars.URLQueryParamSortOrder))
	if sortOrder != constvars.SortOrderAsc && sortOrder != constvars.SortOrderDesc {
		sortOrder = defaultSortOrder
	}

	return requests.Pagination{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
